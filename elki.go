package elki

import (
	"context"
	"fmt"

	"github.com/aboluo/elki/ingest"
	"github.com/aboluo/elki/label"
	"github.com/aboluo/elki/normalize"
	"github.com/aboluo/elki/parser"
	"github.com/aboluo/elki/sink"
	"github.com/aboluo/elki/source"
)

// Pipeline ingests a logical dataset split across several parallel aligned
// sources: it reads and parses all sources, assembles composite records,
// normalizes them per representation, binds labels to associations and hands
// the result to the sink.
//
// A Pipeline is scoped to one dataset run. Its normalization chain carries
// fitted state; do not reuse a Pipeline across unrelated datasets.
type Pipeline struct {
	sources []string
	parsers []parser.Parser
	chain   *normalize.Chain
	binder  *label.Binder
	sink    sink.Sink
	opener  source.Opener
	logger  *Logger
}

// New creates a pipeline over the ordered, non-empty source list.
//
// Without options every source is parsed with the default parser, every
// representation is normalized with the default normalization, labels stay
// raw strings and records land in an in-memory sink.
func New(sources []string, optFns ...Option) (*Pipeline, error) {
	o := applyOptions(optFns)

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no sources specified", ErrConfiguration)
	}

	parsers, err := resolveParsers(sources, &o)
	if err != nil {
		return nil, err
	}

	chain, err := resolveChain(&o)
	if err != nil {
		return nil, err
	}

	binder, err := resolveBinder(&o)
	if err != nil {
		return nil, err
	}

	s := o.sink
	if s == nil {
		s = sink.NewMemory()
	}

	return &Pipeline{
		sources: sources,
		parsers: parsers,
		chain:   chain,
		binder:  binder,
		sink:    s,
		opener:  o.opener,
		logger:  o.logger,
	}, nil
}

// Run executes the full ingestion: sources are read and parsed, composite
// records assembled, normalized and bound to associations, and the batch is
// inserted into the sink.
//
// The pipeline is strictly sequential and fail-fast: the first error aborts
// the run and nothing is inserted into the sink.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("ingesting dataset", "sources", len(p.sources))

	reader, err := ingest.NewParallelSourceReader(p.sources, p.parsers, p.opener)
	if err != nil {
		return translate(err, ErrConfiguration)
	}

	results, err := reader.Read(ctx)
	if err != nil {
		return translate(err, ErrConfiguration)
	}

	records, labels, err := ingest.NewCompositeRecordAssembler().Assemble(results)
	if err != nil {
		return translate(err, ErrAlignment)
	}
	p.logger.Debug("assembled composite records",
		"records", len(records),
		"representations", len(results),
	)

	if p.chain != nil {
		records, err = p.chain.Normalize(records)
		if err != nil {
			return translate(err, ErrSchema)
		}
		p.logger.Debug("normalized records", "chain_length", p.chain.Length())
	}

	associations, err := p.binder.Bind(labels)
	if err != nil {
		return translate(err, ErrInstantiation)
	}

	if err := p.sink.Insert(ctx, records, associations); err != nil {
		return err
	}

	p.logger.Info("ingestion complete", "records", len(records))
	return nil
}

// Chain returns the pipeline's normalization chain, or nil if normalization
// is disabled. After a successful Run the chain is fitted and can restore
// normalized records back to the original value space.
func (p *Pipeline) Chain() *normalize.Chain {
	return p.chain
}

// Sink returns the sink records are inserted into.
func (p *Pipeline) Sink() sink.Sink {
	return p.sink
}

func resolveParsers(sources []string, o *options) ([]parser.Parser, error) {
	if len(o.parsers) > 0 && len(o.parserTypes) > 0 {
		return nil, fmt.Errorf("%w: both parser instances and parser types configured", ErrConfiguration)
	}

	if len(o.parsers) > 0 {
		if len(o.parsers) != len(sources) {
			return nil, translate(&ingest.ErrParserCount{Parsers: len(o.parsers), Sources: len(sources)}, nil)
		}
		return o.parsers, nil
	}

	if len(o.parserTypes) > 0 {
		if len(o.parserTypes) != len(sources) {
			return nil, translate(&ingest.ErrParserCount{Parsers: len(o.parserTypes), Sources: len(sources)}, nil)
		}
		parsers := make([]parser.Parser, len(o.parserTypes))
		for i, name := range o.parserTypes {
			p, err := parser.New(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
			}
			parsers[i] = p
		}
		return parsers, nil
	}

	// Default: one default parser per source.
	parsers := make([]parser.Parser, len(sources))
	for i := range parsers {
		p, err := parser.New(parser.DefaultType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		parsers[i] = p
	}
	return parsers, nil
}

func resolveChain(o *options) (*normalize.Chain, error) {
	if o.disableNormalization {
		if len(o.normalizations) > 0 || o.normalizationTypes != "" {
			return nil, fmt.Errorf("%w: normalization disabled but normalizations configured", ErrConfiguration)
		}
		return nil, nil
	}

	if len(o.normalizations) > 0 && o.normalizationTypes != "" {
		return nil, fmt.Errorf("%w: both normalization factories and types configured", ErrConfiguration)
	}

	if len(o.normalizations) > 0 {
		return normalize.NewChain(o.normalizations...), nil
	}

	if o.normalizationTypes != "" {
		factories, err := normalize.ParseTypes(o.normalizationTypes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return normalize.NewChain(factories...), nil
	}

	// Default: chain length inferred from the first batch.
	return normalize.NewChain(), nil
}

func resolveBinder(o *options) (*label.Binder, error) {
	if o.labelFactory != nil && o.labelType != "" {
		return nil, fmt.Errorf("%w: both label factory and label type configured", ErrConfiguration)
	}

	if o.labelFactory != nil {
		return label.NewBinder(o.associationKey, "custom", o.labelFactory), nil
	}

	if o.labelType != "" {
		factory, err := label.FactoryFor(o.labelType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return label.NewBinder(o.associationKey, o.labelType, factory), nil
	}

	return label.NewBinder(o.associationKey, "", nil), nil
}
