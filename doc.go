// Package elki ingests datasets that are split across several parallel
// aligned numeric sources, assembles composite multi-representation records
// from them, applies a reversible per-representation normalization and hands
// the result to a storage sink.
//
// # Quick Start
//
//	p, err := elki.New([]string{"color.txt", "shape.txt"},
//	    elki.WithNormalizations("minmax,zscore"),
//	    elki.WithLabelType("simple"),
//	)
//	if err != nil {
//	    // ...
//	}
//	if err := p.Run(ctx); err != nil {
//	    // ...
//	}
//	db := p.Sink().(*sink.Memory)
//
// Sources must be row-aligned: row i of every source describes the same
// logical object. The composite record built from row i carries one vector
// per source, the identity of the first source's record, and the merged
// label of all sources.
//
// Normalization fits lazily on the first batch and is reversible on the same
// fitted chain:
//
//	restored, err := p.Chain().Restore(normalizedRecords)
//
// The pipeline is a synchronous, all-at-once batch: a run either completes
// fully or aborts on the first error with nothing inserted into the sink.
// Errors satisfy errors.Is against the pipeline's error kinds
// (ErrConfiguration, ErrAlignment, ErrSchema, ErrUnsupportedOperation,
// ErrInstantiation).
package elki
