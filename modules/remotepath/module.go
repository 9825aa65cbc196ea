// Package remotepath registers a pathfinder provider that delegates the
// query to a remote socket.io endpoint instead of searching locally.
// The remote side receives the graph and endpoint names as JSON on the
// "pathfind" event and answers on the "route" event with the same
// encoded route text a local provider would produce.
package remotepath

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/pathgrid/internal/ctxlog"
	"github.com/vk/pathgrid/internal/graph"
	"github.com/vk/pathgrid/internal/provider"
	"github.com/vk/pathgrid/internal/route"
	"github.com/vk/pathgrid/internal/settings"
	"github.com/vk/pathgrid/internal/status"
)

// PluginID and ProviderName key this provider in the host's registry:
// "remote-socketio::Remote".
const (
	PluginID     = "remote-socketio"
	ProviderName = "Remote"

	queryEvent = "pathfind"
	routeEvent = "route"
)

// Module implements provider.Module for this package.
type Module struct {
	URL                string
	Namespace          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// query is the wire form of one pathfinding request.
type query struct {
	Graph       *graph.Graph `json:"graph"`
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
}

// opResult is a private struct to safely pass results through the done
// channel.
type opResult struct {
	names []string
	err   error
}

// ID returns the plugin identifier.
func (m *Module) ID() string { return PluginID }

// Register offers the remote provider to the host.
func (m *Module) Register(r *provider.Registry) error {
	return r.RegisterPathfinder(PluginID, ProviderName, m.Search)
}

// Search forwards the query to the configured endpoint and waits for
// the answering route event, bounded by the module timeout.
func (m *Module) Search(ctx context.Context, graphSettings *settings.Bundle, src, dst string) (*settings.Bundle, error) {
	if graphSettings == nil || src == "" || dst == "" {
		return nil, fmt.Errorf("remote pathfind query: %w", status.ErrBadArgument)
	}
	g, ok := settings.GraphFromBundle(graphSettings)
	if !ok {
		return nil, fmt.Errorf("remote pathfind query: no usable %q entry: %w", settings.GraphKey, status.ErrBadArgument)
	}

	logger := ctxlog.FromContext(ctx).With("provider", ProviderName, "url", m.URL, "source", src, "destination", dst)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	var isConnected atomic.Bool

	timeout := m.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(m.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if m.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(m.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	// --- Event Listeners ---
	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected to remote pathfinder", "namespace", m.Namespace, "sid", io.Id())

		payload, err := json.Marshal(query{Graph: g, Source: src, Destination: dst})
		if err != nil {
			done <- opResult{err: fmt.Errorf("encode query: %w", err)}
			return
		}
		io.Emit(queryEvent, string(payload))
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				done <- opResult{err: err}
				return
			}
		}
		done <- opResult{err: fmt.Errorf("remote pathfinder connection failed")}
	})

	io.On(types.EventName(routeEvent), func(data ...any) {
		if len(data) == 0 {
			done <- opResult{}
			return
		}
		text, ok := data[0].(string)
		if !ok {
			done <- opResult{err: fmt.Errorf("remote pathfinder answered with %T, want string", data[0])}
			return
		}
		if text == "" || text == "[]" {
			done <- opResult{}
			return
		}
		names, err := route.Decode(text)
		done <- opResult{names: names, err: err}
	})

	// --- Execution Block ---
	io.Connect()

	select {
	case <-opCtx.Done():
		var errMsg string
		if isConnected.Load() {
			errMsg = fmt.Sprintf("timed out after connecting while waiting for event '%s'", routeEvent)
		} else {
			errMsg = "timed out while waiting for initial connection"
		}
		return nil, fmt.Errorf("%s", errMsg)
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return route.Record(res.names), nil
	}
}

// Tick and Shutdown are no-op lifecycle hooks; each query owns its own
// connection.
func (m *Module) Tick() error     { return nil }
func (m *Module) Shutdown() error { return nil }
