package loader

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/vk/pathgrid/internal/ctxlog"
	"github.com/vk/pathgrid/internal/graph"
	"github.com/vk/pathgrid/internal/status"
)

// Neo4jOptions configures a Bolt-backed graph source.
type Neo4jOptions struct {
	URI      string
	Database string
	Username string
	Password string
}

// Neo4jSource loads a graph from a Neo4j (or any Bolt-compatible)
// database. Waypoint nodes carry a `name` property and link to each
// other through LINKS_TO relationships; link collection order follows
// the query's ordering, so traversal stays deterministic for a given
// database state.
type Neo4jSource struct {
	Options Neo4jOptions
}

const graphQuery = `
MATCH (n:Waypoint)
OPTIONAL MATCH (n)-[:LINKS_TO]->(m:Waypoint)
RETURN n.name AS name, collect(m.name) AS links
ORDER BY name`

// Load connects, verifies connectivity, and collects the full waypoint
// graph in one read session.
func (s *Neo4jSource) Load(ctx context.Context) (*graph.Graph, error) {
	if s.Options.URI == "" {
		return nil, fmt.Errorf("neo4j graph source: URI is required: %w", status.ErrBadArgument)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading graph from database.", "uri", s.Options.URI, "database", s.Options.Database)

	auth := neo4j.NoAuth()
	if s.Options.Username != "" {
		auth = neo4j.BasicAuth(s.Options.Username, s.Options.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(s.Options.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verify graph connectivity: %w", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.Options.Database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, graphQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("query graph: %w", err)
	}

	var g graph.Graph
	for res.Next(ctx) {
		rec := res.Record()
		nameVal, _ := rec.Get("name")
		name, ok := nameVal.(string)
		if !ok || name == "" {
			continue
		}
		node := graph.Node{Name: name}
		if linksVal, _ := rec.Get("links"); linksVal != nil {
			list, _ := linksVal.([]any)
			for _, lv := range list {
				// collect() yields a single null for unlinked nodes.
				if link, ok := lv.(string); ok && link != "" {
					node.Links = append(node.Links, link)
				}
			}
		}
		g.Nodes = append(g.Nodes, node)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("read graph records: %w", err)
	}

	logger.Debug("Graph loaded from database.", "nodes", g.Len())
	return &g, nil
}
