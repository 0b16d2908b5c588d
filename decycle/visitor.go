package decycle

import (
	"context"

	"github.com/decycle-go/decycle/depgraph"
)

// visitorAdapter bridges the ingest.Visitor contract to a Graph's own
// Add/Connect operations.
type visitorAdapter struct {
	graph *depgraph.Graph
}

func (v *visitorAdapter) Categorize(ctx context.Context, className string) error {
	_, err := v.graph.Add(ctx, className)
	return err
}

func (v *visitorAdapter) Connect(ctx context.Context, fromClassName, toClassName string) error {
	_, err := v.graph.Connect(ctx, fromClassName, toClassName)
	return err
}
