package erp

// Flat request objects mirroring the ERP's SOAP wire schema. Field names
// and types follow the remote schema exactly where an existing ERP depends
// on them; requests are assembled fully populated in one place and never
// mutated afterwards.

// AddIncomingPayment books a payment against an order previously exported
// to the ERP.
type AddIncomingPayment struct {
	Amount            float64 `xml:"Amount"`
	Currency          string  `xml:"Currency"`
	CustomerEmail     string  `xml:"CustomerEmail"`
	CustomerID        int     `xml:"CustomerID"`
	CustomerName      string  `xml:"CustomerName"`
	MethodOfPaymentID int     `xml:"MethodOfPaymentID"`
	OrderID           int     `xml:"OrderID"`
	ReasonForPayment  string  `xml:"ReasonForPayment"`
	TransactionID     string  `xml:"TransactionID"`
	TransactionTime   int64   `xml:"TransactionTime"`
}

// SetCustomer creates or updates a customer record in the ERP.
type SetCustomer struct {
	ExternalCustomerID string `xml:"ExternalCustomerID"`
	CustomerNumber     string `xml:"CustomerNumber"`
	Email              string `xml:"Email"`
	FirstName          string `xml:"FirstName"`
	Surname            string `xml:"Surname"`
	Street             string `xml:"Street"`
	ZIP                string `xml:"ZIP"`
	City               string `xml:"City"`
	CountryISO2        string `xml:"CountryISO2"`
	Telephone          string `xml:"Telephone"`
}

// SetOrder creates a sales order in the ERP.
type SetOrder struct {
	ExternalOrderID string         `xml:"ExternalOrderID"`
	CustomerID      int            `xml:"CustomerID"`
	Currency        string         `xml:"Currency"`
	OrderTimestamp  int64          `xml:"OrderTimestamp"`
	TotalGross      float64        `xml:"TotalGross"`
	OrderItems      []SetOrderItem `xml:"OrderItems>item"`
}

// SetOrderItem is one order position inside a SetOrder request.
type SetOrderItem struct {
	ItemNumber string  `xml:"ItemNumber"`
	ItemText   string  `xml:"ItemText"`
	Quantity   int     `xml:"Quantity"`
	Price      float64 `xml:"Price"`
}

// SetProduct creates or updates an article in the ERP.
type SetProduct struct {
	ExternalProductID string            `xml:"ExternalProductID"`
	ItemNumber        string            `xml:"ItemNumber"`
	Name              string            `xml:"Name"`
	Description       string            `xml:"Description"`
	Price             float64           `xml:"Price"`
	StockLevel        int               `xml:"StockLevel"`
	WeightInGram      int               `xml:"WeightInGram"`
	Active            int               `xml:"Active"`
	Properties        []ProductProperty `xml:"Properties>item"`
}

// ProductProperty attaches a resolved property value to a SetProduct request.
type ProductProperty struct {
	PropertyID      int    `xml:"PropertyID"`
	PropertyValueID int    `xml:"PropertyValueID"`
	Value           string `xml:"Value"`
}

// SetProperty creates or updates a property group in the ERP.
type SetProperty struct {
	ExternalPropertyID string `xml:"ExternalPropertyID"`
	PropertyGroupName  string `xml:"PropertyGroupName"`
	PropertyName       string `xml:"PropertyName"`
	Lang               string `xml:"Lang"`
}

// SetWarehouse creates or updates a warehouse definition in the ERP.
// The field set mirrors the remote wire record exactly.
type SetWarehouse struct {
	AvailabilityOnstock         int    `xml:"AvailabilityOnstock"`
	AvailabilityOutofstock      int    `xml:"AvailabilityOutofstock"`
	Email                       string `xml:"Email"`
	Fax                         string `xml:"Fax"`
	Fon                         string `xml:"Fon"`
	InventoryModus              int    `xml:"InventoryModus"`
	Note                        string `xml:"Note"`
	Priority                    int    `xml:"Priority"`
	SplitByParcel               int    `xml:"SplitByParcel"`
	StandardStorageLocationType string `xml:"StandardStorageLocationType"`
	StandardZone                int    `xml:"StandardZone"`
	WarehouseAddress            string `xml:"WarehouseAddress"`
	WarehouseAssignedForRepairs int    `xml:"WarehouseAssignedForRepairs"`
	WarehouseID                 int    `xml:"WarehouseID"`
	WarehouseLocation           int    `xml:"WarehouseLocation"`
	WarehouseName               string `xml:"WarehouseName"`
	WarehouseType               int    `xml:"WarehouseType"`
}
