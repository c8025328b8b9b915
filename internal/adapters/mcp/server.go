// Package mcp exposes the cookbook as Model Context Protocol tools.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.trai.ch/cookbook/internal/core/domain"
)

// Cookbook is the application surface exposed as tools.
type Cookbook interface {
	CreateEntry(in domain.EntryInput) error
	Entry(name string) (domain.Entry, bool)
	Entries() []domain.Entry
	Summarize(ctx context.Context, name string) (*domain.Summary, error)
	ParseName(input string) (string, error)
}

// Server serves cookbook tools over an MCP transport.
type Server struct {
	cookbook Cookbook
	mcp      *sdk.Server
}

// NewServer creates a Server and registers its tools.
func NewServer(cookbook Cookbook, version string) *Server {
	s := &Server{
		cookbook: cookbook,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "cookbook",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// Connect starts a session on transport without blocking.
func (s *Server) Connect(ctx context.Context, transport sdk.Transport) (*sdk.ServerSession, error) {
	return s.mcp.Connect(ctx, transport, nil)
}
