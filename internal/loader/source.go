// Package loader loads caller-owned graphs from their external
// representations: HCL definition files and Bolt-compatible graph
// databases.
package loader

import (
	"context"

	"github.com/vk/pathgrid/internal/graph"
)

// Source yields one read-only graph for a query run. The returned graph
// is owned by the caller; sources retain nothing.
type Source interface {
	Load(ctx context.Context) (*graph.Graph, error)
}
