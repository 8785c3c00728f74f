// Package ingest reads parallel aligned sources and assembles composite
// records from them.
//
// The ParallelSourceReader owns each source stream exclusively for the
// duration of parsing and releases it on every exit path. The
// CompositeRecordAssembler zips per-representation results row-wise,
// merges labels and propagates record identity from representation 0.
package ingest
