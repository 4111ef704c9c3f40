package server

import (
	"encoding/json"
	"fmt"

	"github.com/nami2111/nft-studio/internal/engine"
	"github.com/nami2111/nft-studio/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "composite_images", "generate_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// CompositeOutput is the tool result for every compositing tool.
type CompositeOutput struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	DataURL  string `json:"data_url"`
	MimeType string `json:"mime_type"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Unwraps inline images from data URL or base64 form
//  3. Calls the engine or imaging function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Compositing
	case "composite_images":
		return s.handleCompositeImages(args)
	case "composite_multiple_layers":
		return s.handleCompositeMultipleLayers(args)
	case "generate_preview":
		return s.handleGeneratePreview(args)

	// Inspection
	case "image_info":
		return s.handleImageInfo(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func compositeOutput(r *engine.CompositeResult) *CompositeOutput {
	return &CompositeOutput{
		Width:    r.Width,
		Height:   r.Height,
		DataURL:  r.DataURL(),
		MimeType: imaging.MimePNG,
	}
}

// === Compositing Handlers ===

type compositeImagesArgs struct {
	BaseImage    string `json:"base_image"`
	OverlayImage string `json:"overlay_image"`
}

func (s *Server) handleCompositeImages(args json.RawMessage) (interface{}, error) {
	var a compositeImagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := engine.UnwrapImage(engine.ImageBase, a.BaseImage)
	if err != nil {
		return nil, err
	}
	overlay, err := engine.UnwrapImage(engine.ImageOverlay, a.OverlayImage)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.CompositeImages(base, overlay)
	if err != nil {
		return nil, err
	}
	return compositeOutput(result), nil
}

type compositeMultipleLayersArgs struct {
	BaseImage string        `json:"base_image"`
	Layers    []interface{} `json:"layers"`
}

func (s *Server) handleCompositeMultipleLayers(args json.RawMessage) (interface{}, error) {
	var a compositeMultipleLayersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := engine.UnwrapImage(engine.ImageBase, a.BaseImage)
	if err != nil {
		return nil, err
	}
	layers, err := engine.ParseLayerValues(a.Layers)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.CompositeMultipleLayers(base, layers)
	if err != nil {
		return nil, err
	}
	return compositeOutput(result), nil
}

type generatePreviewArgs struct {
	BaseImage    string `json:"base_image"`
	OverlayImage string `json:"overlay_image"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

func (s *Server) handleGeneratePreview(args json.RawMessage) (interface{}, error) {
	var a generatePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := engine.UnwrapImage(engine.ImageBase, a.BaseImage)
	if err != nil {
		return nil, err
	}
	overlay, err := engine.UnwrapImage(engine.ImageOverlay, a.OverlayImage)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.GeneratePreview(base, overlay, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return compositeOutput(result), nil
}

// === Inspection Handlers ===

type imageArgs struct {
	Image string `json:"image"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := engine.UnwrapImage("input", a.Image)
	if err != nil {
		return nil, err
	}
	return s.engine.Inspect(data)
}

type imageSampleColorArgs struct {
	Image string `json:"image"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := engine.UnwrapImage("input", a.Image)
	if err != nil {
		return nil, err
	}
	g, err := s.engine.DecodeImage("input", data)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(g, a.X, a.Y)
}
