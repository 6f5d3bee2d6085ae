package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jotapp/jot/pkg/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler routes MCP tool calls onto a note service.
type Handler struct {
	svc *core.Service
}

// NewHandler creates a tool call handler backed by the given service.
func NewHandler(svc *core.Service) *Handler {
	return &Handler{svc: svc}
}

// createToolHandler returns a tool handler function for the given tool name.
func (h *Handler) createToolHandler(name string) func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result, err := h.HandleToolCall(ctx, name, args)
		return result, nil, err
	}
}

// HandleToolCall routes a tool call to the matching handler. Operational
// failures come back as IsError results, not transport errors.
func (h *Handler) HandleToolCall(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	switch name {
	case "create_note":
		return h.handleCreate(ctx)
	case "list_notes":
		return h.handleList(ctx)
	case "update_note":
		return h.handleUpdate(ctx, args)
	case "delete_note":
		return h.handleDelete(ctx, args)
	default:
		return newToolResultError(fmt.Sprintf("unknown tool: %s", name)), nil
	}
}

func (h *Handler) handleCreate(ctx context.Context) (*mcp.CallToolResult, error) {
	note, err := h.svc.CreateNote(ctx)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to create note: %v", err)), nil
	}
	return newToolResultText(marshalToolJSON(note)), nil
}

func (h *Handler) handleList(ctx context.Context) (*mcp.CallToolResult, error) {
	list, err := h.svc.ListNotes(ctx)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to list notes: %v", err)), nil
	}
	if list == nil {
		// An empty collection marshals as [], not null
		list = []core.Note{}
	}
	return newToolResultText(marshalToolJSON(list)), nil
}

func (h *Handler) handleUpdate(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	id, ok := args["id"].(string)
	if !ok {
		return newToolResultError("id must be a string"), nil
	}
	content, ok := args["content"].(string)
	if !ok {
		return newToolResultError("content must be a string"), nil
	}

	if err := h.svc.UpdateNote(ctx, id, content); err != nil {
		return newToolResultError(fmt.Sprintf("failed to update note: %v", err)), nil
	}
	return newToolResultText(fmt.Sprintf("note updated: %s", id)), nil
}

func (h *Handler) handleDelete(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	id, ok := args["id"].(string)
	if !ok {
		return newToolResultError("id must be a string"), nil
	}

	if err := h.svc.DeleteNote(ctx, id); err != nil {
		return newToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
	}
	return newToolResultText(fmt.Sprintf("note deleted: %s", id)), nil
}

// newToolResultText creates a successful tool result with text content.
func newToolResultText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// newToolResultError creates a tool result indicating an error.
func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

func marshalToolJSON(value any) string {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response","detail":%q}`, err.Error())
	}
	return string(data)
}
