package loader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/pathgrid/internal/ctxlog"
	"github.com/vk/pathgrid/internal/graph"
)

// nodeBlock is one `node "NAME" { links = [...] }` block in a graph
// definition file.
type nodeBlock struct {
	Name  string   `hcl:"name,label"`
	Links []string `hcl:"links,optional"`
}

// graphFile is the top-level structure of a graph definition file. Node
// order in the file is preserved, which matters: it fixes both lookup
// tie-breaks and traversal discovery order.
type graphFile struct {
	Nodes []*nodeBlock `hcl:"node,block"`
}

// FileSource loads a graph from an HCL definition file.
type FileSource struct {
	Path string
}

// Load parses and decodes the definition file into a graph.
func (s *FileSource) Load(ctx context.Context) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading graph definition.", "path", s.Path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(s.Path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", s.Path, diags)
	}

	var gf graphFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &gf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode graph definition in %s: %w", s.Path, diags)
	}

	g := &graph.Graph{Nodes: make([]graph.Node, 0, len(gf.Nodes))}
	for _, nb := range gf.Nodes {
		g.Nodes = append(g.Nodes, graph.Node{Name: nb.Name, Links: nb.Links})
	}

	logger.Debug("Graph definition loaded.", "nodes", g.Len())
	return g, nil
}
