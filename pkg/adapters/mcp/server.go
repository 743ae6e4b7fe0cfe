// Package mcp exposes a tool registry as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/toolbelt/internal/logging"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// CatalogueURI is the resource listing every tool.
	CatalogueURI = "toolbelt://tools"
	// PalettesURI is the resource listing stored palettes.
	PalettesURI = "toolbelt://palettes"
)

// Server exposes every registry tool as an MCP tool.
type Server struct {
	registry  *registry.Registry
	palettes  ports.PaletteSource
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger configures the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPalettes publishes the palette catalogue as a resource.
func WithPalettes(src ports.PaletteSource) Option {
	return func(s *Server) {
		s.palettes = src
	}
}

// NewServer creates a new MCP Server instance. Tools registered in reg afterwards are
// not exposed.
func NewServer(reg *registry.Registry, version string, opts ...Option) *Server {
	s := &Server{
		registry:  reg,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("toolbelt-mcp", version, server.WithRecovery()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	for _, tool := range s.registry.List() {
		s.mcpServer.AddTool(toolFor(tool), s.handler(tool.Name))
	}
}

// toolFor translates a registry tool into its MCP declaration.
func toolFor(tool registry.Tool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(tool.Description),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	for _, p := range tool.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case registry.TypeString:
			opts = append(opts, mcp.WithString(p.Name, props...))
		case registry.TypeNumber, registry.TypeInteger:
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		case registry.TypeBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, props...))
		case registry.TypeArray:
			opts = append(opts, mcp.WithArray(p.Name, props...))
		case registry.TypeObject:
			opts = append(opts, mcp.WithObject(p.Name, props...))
		default:
			opts = append(opts, mcp.WithAny(p.Name, props...))
		}
	}
	return mcp.NewTool(tool.Name, opts...)
}

// handler runs a registry tool. Tool failures become error results so the client
// can see them; only marshalling problems fail the request.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.registry.Execute(ctx, name, request.GetArguments())
		if err != nil {
			s.logger.Warn("tool call failed", "tool", name, "err", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		jsonBytes, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("marshal %s result: %w", name, err)
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogueURI, "Tool catalogue",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return jsonResource(CatalogueURI, s.registry.List())
	})

	if s.palettes == nil {
		return
	}
	s.mcpServer.AddResource(mcp.NewResource(PalettesURI, "Stored palettes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.palettes.Palettes(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list palettes: %w", err)
		}

		out := make(map[string][]string, len(names))
		for _, name := range names {
			pal, err := s.palettes.Palette(ctx, name)
			if errors.Is(err, ports.ErrPaletteNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out[name] = pal.Hex()
		}
		return jsonResource(PalettesURI, out)
	})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
