package elki

import (
	"github.com/aboluo/elki/label"
	"github.com/aboluo/elki/model"
	"github.com/aboluo/elki/normalize"
	"github.com/aboluo/elki/parser"
	"github.com/aboluo/elki/sink"
	"github.com/aboluo/elki/source"
)

type options struct {
	parsers              []parser.Parser
	parserTypes          []string
	normalizations       []normalize.Factory
	normalizationTypes   string
	disableNormalization bool
	labelType            string
	labelFactory         label.Factory
	associationKey       model.AssociationKey
	sink                 sink.Sink
	opener               source.Opener
	logger               *Logger
}

// Option configures a Pipeline.
type Option func(*options)

// WithParsers binds one parser instance per source, in source order.
// The list length must equal the number of sources.
func WithParsers(parsers ...parser.Parser) Option {
	return func(o *options) {
		o.parsers = parsers
	}
}

// WithParserTypes binds one registered parser type identifier per source, in
// source order. The list length must equal the number of sources.
func WithParserTypes(names ...string) Option {
	return func(o *options) {
		o.parserTypes = names
	}
}

// WithNormalizations configures the normalization chain from a
// comma-delimited list of registered type identifiers, one per
// representation (e.g. "minmax,zscore,identity"). The list length fixes the
// chain length.
func WithNormalizations(list string) Option {
	return func(o *options) {
		o.normalizationTypes = list
	}
}

// WithNormalizationFactories configures the normalization chain from
// explicit factories, one per representation.
func WithNormalizationFactories(factories ...normalize.Factory) Option {
	return func(o *options) {
		o.normalizations = factories
	}
}

// WithoutNormalization skips the normalization stage entirely; records reach
// the sink with their original values.
func WithoutNormalization() Option {
	return func(o *options) {
		o.disableNormalization = true
	}
}

// WithLabelType converts merged labels into structured class labels of the
// given registered type instead of keeping them as raw strings.
func WithLabelType(name string) Option {
	return func(o *options) {
		o.labelType = name
	}
}

// WithLabelFactory converts merged labels into structured class labels
// produced by the given factory.
func WithLabelFactory(factory label.Factory) Option {
	return func(o *options) {
		o.labelFactory = factory
	}
}

// WithAssociationKey changes the association key labels are attached under.
// Defaults to model.AssociationLabel.
func WithAssociationKey(key model.AssociationKey) Option {
	return func(o *options) {
		o.associationKey = key
	}
}

// WithSink configures the storage layer receiving the final records.
// Defaults to an in-memory sink, retrievable via Pipeline.Sink.
func WithSink(s sink.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithOpener configures how source identifiers are resolved into streams.
// Defaults to the local filesystem.
func WithOpener(opener source.Opener) Option {
	return func(o *options) {
		o.opener = opener
	}
}

// WithLogger configures structured logging for pipeline stages.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		associationKey: model.AssociationLabel,
		logger:         NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.opener == nil {
		o.opener = source.NewLocal("")
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
