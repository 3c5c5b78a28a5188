package soap

import "encoding/xml"

const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	serviceNamespace  = "urn:erp-connector"
)

// requestEnvelope is the outgoing SOAP 1.1 envelope. The operation payload
// is pre-marshaled; its root element name is the operation name.
type requestEnvelope struct {
	XMLName    xml.Name    `xml:"soapenv:Envelope"`
	EnvelopeNS string      `xml:"xmlns:soapenv,attr"`
	ServiceNS  string      `xml:"xmlns:urn,attr"`
	Body       requestBody `xml:"soapenv:Body"`
}

type requestBody struct {
	Payload []byte `xml:",innerxml"`
}

// newRequestEnvelope wraps a marshaled operation payload in an envelope.
func newRequestEnvelope(payload []byte) *requestEnvelope {
	return &requestEnvelope{
		EnvelopeNS: envelopeNamespace,
		ServiceNS:  serviceNamespace,
		Body:       requestBody{Payload: payload},
	}
}

// responseEnvelope is the incoming SOAP 1.1 envelope. The body either holds
// a fault or the operation response element.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Fault   *Fault `xml:"Fault"`
	Payload []byte `xml:",innerxml"`
}

// Fault is a SOAP 1.1 fault.
type Fault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Actor  string `xml:"faultactor"`
	Detail string `xml:"detail"`
}
