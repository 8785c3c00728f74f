// Package model defines the core types shared across the ingestion pipeline.
//
// # Identity
//
//   - RecordID: stable record identity (uint64), assigned once at parse time
//     and propagated unchanged through assembly, normalization and restore.
//
// # Data Types
//
//   - Vector: ordered numeric values of one representation
//   - Representation: one parsed source record (identity + vector)
//   - CompositeRecord: one representation per source, sharing a single identity
//   - Associations: key/value pairs attached to a record for the sink
package model
