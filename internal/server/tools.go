package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageProperty describes an image argument passed inline.
func imageProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ". Either a data URL (data:image/png;base64,...) or bare base64.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Compositing
		{
			Name:        "composite_images",
			Description: "Blend one overlay onto a base image with source-over alpha compositing. The overlay is anchored at the top-left; pixels outside the base are ignored. Returns a PNG data URL at the base size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_image":    imageProperty("Bottom image"),
					"overlay_image": imageProperty("Image painted over the base"),
				},
				"required": []string{"base_image", "overlay_image"},
			},
		},
		{
			Name:        "composite_multiple_layers",
			Description: "Blend an ordered list of layers onto a base image. Each layer is painted over the result of all previous layers, so order matters. Fails without output if any layer cannot be decoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_image": imageProperty("Bottom image"),
					"layers": map[string]interface{}{
						"type":        "array",
						"description": "Layers from bottom to top, each a data URL or bare base64 string",
						"items": map[string]interface{}{
							"type": "string",
						},
					},
				},
				"required": []string{"base_image", "layers"},
			},
		},
		{
			Name:        "generate_preview",
			Description: "Resize base and overlay to the given size (Lanczos) and blend them. Inputs already at the target size are not resampled. The target must not exceed the server's pixel limit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_image":    imageProperty("Bottom image"),
					"overlay_image": imageProperty("Image painted over the base"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Preview width in pixels",
						"minimum":     1,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Preview height in pixels",
						"minimum":     1,
					},
				},
				"required": []string{"base_image", "overlay_image", "width", "height"},
			},
		},

		// Inspection
		{
			Name:        "image_info",
			Description: "Decode an image and return its dimensions, format, color depth, alpha presence and encoded size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty("Image to inspect"),
				},
				"required": []string{"image"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact RGBA value at a pixel, with hex and HSL forms. Useful to verify a composite.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": imageProperty("Image to sample"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"image", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
