package dto

// ExportRequest identifies one entity to export
type ExportRequest struct {
	Kind string `uri:"kind" binding:"required,oneof=ORDER PAYMENT CUSTOMER PRODUCT WAREHOUSE PROPERTY"`
	ID   int64  `uri:"id" binding:"required,min=1"`
}

// ListMappingsRequest selects identity mappings of one kind
type ListMappingsRequest struct {
	Kind  string `uri:"kind" binding:"required,oneof=ORDER PAYMENT CUSTOMER PRODUCT WAREHOUSE PROPERTY CURRENCY PAYMENT_METHOD"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// SeedMappingRequest registers a configuration-owned mapping. Only the
// resolve-only kinds can be seeded; exported kinds get their mappings from
// the export pipeline.
type SeedMappingRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=CURRENCY PAYMENT_METHOD"`
	LocalID  string `json:"local_id" binding:"required,notblank,max=100"`
	RemoteID string `json:"remote_id" binding:"required,notblank,max=100"`
}
