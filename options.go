package genogo

import (
	"github.com/hupe1980/genogo/codec"
	"github.com/hupe1980/genogo/intern"
	"github.com/hupe1980/genogo/table"
)

type options struct {
	numShards int
	policy    table.Policy
	codec     codec.Codec
	logger    *Logger
	interner  *intern.Interner
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithShards configures the number of table shards.
//
// One shard (the default) keeps the store strictly single-writer with no
// locking overhead beyond an uncontended mutex. More shards partition
// loci by hash so concurrent producers write in parallel.
func WithShards(n int) Option {
	return func(o *options) {
		o.numShards = n
	}
}

// WithPolicy sets the duplicate-locus policy (merge by default).
func WithPolicy(p table.Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCodec configures the codec used for report encoding.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger sets the structured logger. Nil restores the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInterner shares an existing interner with the store.
//
// Codes are only meaningful relative to one interner instance, so a
// pipeline that interns strings before building records must hand the
// same instance to the store it feeds.
func WithInterner(in *intern.Interner) Option {
	return func(o *options) {
		o.interner = in
	}
}
