package mcp

import "context"

// ContentBlock is one typed block of a tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	JSON any    `json:"json,omitempty"`
}

func TextContent(text string) ContentBlock {
	return ContentBlock{Type: "text", Text: text}
}

func JSONContent(value any) ContentBlock {
	return ContentBlock{Type: "json", JSON: value}
}

// Handler executes one tool call over a flat argument object.
type Handler func(ctx context.Context, args map[string]any) ([]ContentBlock, error)

// Tool pairs a tool's published schema with its handler.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     Handler        `json:"-"`
}

// Registry is the fixed set of tools the server exposes. It is built once
// at startup and read only afterwards.
type Registry struct {
	tools []Tool
}

func NewRegistry(tools ...Tool) *Registry {
	return &Registry{tools: tools}
}

func (r *Registry) List() []Tool {
	return r.tools
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		names = append(names, tool.Name)
	}
	return names
}

// Call runs the named tool. The second return value is false when no such
// tool is registered.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) ([]ContentBlock, bool, error) {
	for _, tool := range r.tools {
		if tool.Name == name {
			content, err := tool.Handler(ctx, args)
			return content, true, err
		}
	}
	return nil, false, nil
}
