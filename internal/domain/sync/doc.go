// Package sync contains the Synchronization bounded context of the connector.
// It owns the identity map between storefront entities and their ERP
// counterparts, the typed export error model, and the transactional
// contracts the export adapters rely on.
//
// Key concepts:
//   - EntityKind: the kind of a synchronized entity (order, customer, ...)
//   - IdentityMapping: persistent (kind, local id) -> remote id correspondence
//   - ExportError: inspectable failure classification for export attempts
//   - TxRunner: boundary for the single local commit of a successful export
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (GORM repositories, the SOAP gateway) are in the infrastructure layer
package sync
