package mcpserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// toolDefinitions returns the note tool definitions exposed to clients.
func toolDefinitions() []*mcp.Tool {
	return []*mcp.Tool{
		{
			Name:        "create_note",
			Description: "Create a new empty note. Returns the assigned id, the path of the backing file, and the (empty) content. Fill the note in afterwards with update_note.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "list_notes",
			Description: "List every note with its full content, ordered by id descending so the newest notes come first. Each entry carries id, path, and content.",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "update_note",
			Description: "Replace a note's content in full. Updating an id that does not exist creates the note instead of failing.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "The identifier of the note to update",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "The full replacement content",
					},
				},
				"required": []string{"id", "content"},
			},
		},
		{
			Name:        "delete_note",
			Description: "Delete a note by id. Deleting an id that does not exist succeeds without error.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "The identifier of the note to delete",
					},
				},
				"required": []string{"id"},
			},
		},
	}
}
