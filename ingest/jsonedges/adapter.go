package jsonedges

import (
	"context"
	"fmt"
	"os"

	"github.com/decycle-go/decycle/ingest"
)

// Adapter implements [ingest.Source] over in-memory JSONC edge-list data.
//
// Adapter is safe for concurrent Walk calls after construction; parsing
// happens once, at construction time.
type Adapter struct {
	entries    []entry
	strictJSON bool
}

// Option configures Adapter construction.
type Option func(*options)

type options struct {
	strictJSON bool
}

// WithStrictJSON requires data to be plain JSON (no comments or trailing
// commas) instead of the default JSONC preprocessing.
func WithStrictJSON(strict bool) Option {
	return func(o *options) {
		o.strictJSON = strict
	}
}

// NewAdapter parses data as a JSONC edge-list fixture.
func NewAdapter(data []byte, opts ...Option) (*Adapter, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := parseEntries(data, o.strictJSON)
	if err != nil {
		return nil, err
	}

	return &Adapter{entries: entries, strictJSON: o.strictJSON}, nil
}

// NewFileSource reads path and parses it as a JSONC edge-list fixture.
func NewFileSource(path string, opts ...Option) (*Adapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	return NewAdapter(data, opts...)
}

// Walk reports every fixture entry's class and references to v, in fixture
// order.
func (a *Adapter) Walk(ctx context.Context, v ingest.Visitor) error {
	if a == nil {
		return ErrEmptySource
	}

	for _, e := range a.entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v.Categorize(ctx, e.Class); err != nil {
			return err
		}
		for _, ref := range e.References {
			if ref == "" {
				continue
			}
			if err := v.Connect(ctx, e.Class, ref); err != nil {
				return err
			}
		}
	}
	return nil
}
