// Package shop contains the read model of the storefront platform the
// connector exports from. The storefront owns these records and assigns
// their numeric identifiers; the connector only reads them.
//
// Key concepts:
//   - Order, Customer, Product, Warehouse, Property: local entities
//   - TranslationResolver: read-only lookups against the storefront's
//     native configuration model (locales, property options, configurator
//     groups/options); absence of a match is a normal outcome, never an error
package shop
