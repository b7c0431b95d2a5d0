// Package model defines the core value types shared across genogo:
// genomic locus keys and annotation source identifiers.
//
// The types here are plain comparable values with no behavior beyond
// construction and formatting. Keeping them dependency-free lets every
// other package (tables, interners, codecs) agree on the data model
// without import cycles.
package model
