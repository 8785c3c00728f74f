package sink

import (
	"context"

	"github.com/aboluo/elki/model"
)

// Sink accepts the final output of the ingestion pipeline.
//
// Insert is all-or-nothing: associations[i] belongs to records[i], and a
// failed insert must leave the sink unchanged.
type Sink interface {
	Insert(ctx context.Context, records []model.CompositeRecord, associations []model.Associations) error
}
