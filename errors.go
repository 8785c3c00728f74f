package elki

import (
	"errors"
	"fmt"

	"github.com/aboluo/elki/ingest"
	"github.com/aboluo/elki/label"
	"github.com/aboluo/elki/normalize"
)

// Error kinds of the ingestion pipeline. Every error surfaced by New and Run
// satisfies errors.Is against the kind it belongs to; the originating
// package-level error stays reachable via errors.As for diagnostics.
var (
	// ErrConfiguration covers missing or malformed options and
	// parser/normalization count mismatches.
	ErrConfiguration = errors.New("configuration error")

	// ErrAlignment covers object counts differing across sources or rows.
	ErrAlignment = errors.New("alignment error")

	// ErrSchema covers representation-count mismatches against an
	// established chain and restore attempted before any normalize.
	ErrSchema = errors.New("schema error")

	// ErrUnsupportedOperation covers permanently unsupported operations.
	ErrUnsupportedOperation = normalize.ErrUnsupportedOperation

	// ErrInstantiation covers external type construction or initialization
	// failures, wrapping the underlying cause.
	ErrInstantiation = errors.New("instantiation error")
)

// kindOf maps package-level typed errors onto the public taxonomy.
func kindOf(err error) error {
	var (
		alignErr  *ingest.ErrAlignment
		countErr  *ingest.ErrParserCount
		schemaErr *normalize.ErrSchema
		instErr   *label.ErrInstantiation
	)

	switch {
	case errors.As(err, &alignErr):
		return ErrAlignment
	case errors.As(err, &countErr):
		return ErrConfiguration
	case errors.As(err, &schemaErr):
		return ErrSchema
	case errors.As(err, &instErr):
		return ErrInstantiation
	case errors.Is(err, ErrUnsupportedOperation):
		return ErrUnsupportedOperation
	}
	return nil
}

// translate wraps err with its taxonomy kind, falling back to the given kind
// for errors originating in external collaborators.
func translate(err, fallback error) error {
	if err == nil {
		return nil
	}

	kind := kindOf(err)
	if kind == nil {
		kind = fallback
	}
	if kind == nil || errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
