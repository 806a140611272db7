// Package mcp exposes the documentation corpus over the Model Context
// Protocol so AI assistants can search and read the loaded docs.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docserve/docserve"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ErrMissingDocsService is returned when the docs service is not provided.
var ErrMissingDocsService = errors.New("mcp: docs service is required")

// Server is the MCP server for the documentation corpus.
type Server struct {
	docs   docserve.DocsService
	server *mcp.Server
}

// NewServer creates a new MCP server backed by the given docs service.
func NewServer(docs docserve.DocsService) (*Server, error) {
	if docs == nil {
		return nil, ErrMissingDocsService
	}

	impl := &mcp.Implementation{
		Name:    "docserve",
		Version: Version,
	}

	s := &Server{
		docs:   docs,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
