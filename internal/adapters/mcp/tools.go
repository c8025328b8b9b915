package mcp

import (
	"context"
	"errors"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	errNameRequired  = errors.New("name is required")
	errEntryNotFound = errors.New("entry not found")
)

// NameInput selects an entry by name.
type NameInput struct {
	Name string `json:"name" jsonschema:"entry name"`
}

// ParseNameInput carries handwritten text to normalise.
type ParseNameInput struct {
	Input string `json:"input" jsonschema:"handwritten recipe name"`
}

// ListEntriesInput takes no arguments.
type ListEntriesInput struct{}

// AddEntryOutput acknowledges a stored entry.
type AddEntryOutput struct {
	Name string           `json:"name" jsonschema:"name of the stored entry"`
	Type domain.EntryKind `json:"type" jsonschema:"kind of the stored entry"`
}

// ListEntriesOutput lists stored entries in insertion order.
type ListEntriesOutput struct {
	Entries []domain.EntryView `json:"entries" jsonschema:"stored entries"`
}

// ParseNameOutput carries the normalised name.
type ParseNameOutput struct {
	Msg string `json:"msg" jsonschema:"normalised recipe name"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "add_entry",
		Description: "Add an ingredient or a recipe to the cookbook",
	}, s.handleAddEntry)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_summary",
		Description: "Flatten a recipe into total cook time and base ingredient quantities",
	}, s.handleGetSummary)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entry",
		Description: "Retrieve a stored ingredient or recipe",
	}, s.handleGetEntry)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_entries",
		Description: "List every stored entry in insertion order",
	}, s.handleListEntries)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "parse_name",
		Description: "Normalise a handwritten recipe name",
	}, s.handleParseName)
}

func (s *Server) handleAddEntry(_ context.Context, _ *sdk.CallToolRequest, input domain.EntryInput) (*sdk.CallToolResult, AddEntryOutput, error) {
	if err := s.cookbook.CreateEntry(input); err != nil {
		if msg, ok := domain.EntryErrorMessage(err); ok {
			return nil, AddEntryOutput{}, errors.New(msg)
		}
		return nil, AddEntryOutput{}, err
	}
	return nil, AddEntryOutput{Name: input.Name, Type: input.Type}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, _ *sdk.CallToolRequest, input NameInput) (*sdk.CallToolResult, *domain.Summary, error) {
	if input.Name == "" {
		return nil, nil, errNameRequired
	}
	summary, err := s.cookbook.Summarize(ctx, input.Name)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "recipe cannot be summarised")
	}
	return nil, summary, nil
}

func (s *Server) handleGetEntry(_ context.Context, _ *sdk.CallToolRequest, input NameInput) (*sdk.CallToolResult, domain.EntryView, error) {
	if input.Name == "" {
		return nil, domain.EntryView{}, errNameRequired
	}
	entry, ok := s.cookbook.Entry(input.Name)
	if !ok {
		return nil, domain.EntryView{}, errEntryNotFound
	}
	return nil, domain.ViewOf(entry), nil
}

func (s *Server) handleListEntries(_ context.Context, _ *sdk.CallToolRequest, _ ListEntriesInput) (*sdk.CallToolResult, ListEntriesOutput, error) {
	entries := s.cookbook.Entries()
	out := ListEntriesOutput{Entries: make([]domain.EntryView, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, domain.ViewOf(e))
	}
	return nil, out, nil
}

func (s *Server) handleParseName(_ context.Context, _ *sdk.CallToolRequest, input ParseNameInput) (*sdk.CallToolResult, ParseNameOutput, error) {
	name, err := s.cookbook.ParseName(input.Input)
	if err != nil {
		return nil, ParseNameOutput{}, err
	}
	return nil, ParseNameOutput{Msg: name}, nil
}
