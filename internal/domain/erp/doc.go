// Package erp defines the port to the external ERP/warehouse-management
// backend: one synchronous operation per exported entity kind, flat request
// objects mirroring the ERP's SOAP wire schema field-for-field, and the
// structured result every operation returns.
//
// Transport failures and business rejections are kept apart: a transport
// failure surfaces as an error wrapping ErrTransport, a business rejection
// as a returned ExportResult with Success=false. Callers must treat only
// the former as retryable.
package erp
