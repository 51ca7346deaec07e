package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/nid-ocr/internal/errors"
	"github.com/ironsheep/nid-ocr/internal/imaging"
	"github.com/ironsheep/nid-ocr/internal/nid"
	"github.com/ironsheep/nid-ocr/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "nid_extract_fields").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("Tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", errors.Message(err))
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "nid_extract_fields":
		return s.handleExtractFields(ctx, args)
	case "nid_draw_boxes":
		return s.handleDrawBoxes(args)
	case "nid_crop_field":
		return s.handleCropField(args)
	case "nid_clamp_box":
		return s.handleClampBox(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Extraction ===

type extractFieldsArgs struct {
	Path     string `json:"path"`
	JSONPath string `json:"json_path"`
	TextPath string `json:"text_path"`
}

func (s *Server) handleExtractFields(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a extractFieldsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if s.provider == nil {
		return nil, fmt.Errorf("no OCR provider configured")
	}
	if _, err := os.Stat(a.Path); err != nil {
		return nil, errors.NewInputNotFoundError("Image", a.Path)
	}

	lines, err := s.provider.Lines(ctx, a.Path)
	if err != nil {
		return nil, errors.NewOCRFailedError(s.provider.Name(), a.Path, err)
	}

	result := nid.Extract(lines)
	s.logger.Info("Extracted fields", "path", a.Path, "lines", len(lines), "found", result.Found())

	if a.TextPath != "" {
		if err := nid.WriteText(a.TextPath, lines); err != nil {
			return nil, errors.NewWriteError(a.TextPath, err)
		}
	}
	if a.JSONPath != "" {
		if err := nid.WriteJSON(a.JSONPath, result); err != nil {
			return nil, errors.NewWriteError(a.JSONPath, err)
		}
	}
	return result, nil
}

// === Rendering ===

type drawBoxesArgs struct {
	ImagePath string `json:"image_path"`
	JSONPath  string `json:"json_path"`
	Crops     *bool  `json:"crops"`
}

func (s *Server) handleDrawBoxes(args json.RawMessage) (interface{}, error) {
	var a drawBoxesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	crops := s.crops
	if a.Crops != nil {
		crops = *a.Crops
	}

	opts := render.Options{ImagePath: a.ImagePath, JSONPath: a.JSONPath}
	if crops {
		opts.CropsDir = render.CropsDir(a.ImagePath)
	}

	// The annotated file is rewritten on every call; drop any stale decode.
	s.cache.Evict(render.OutputPath(a.ImagePath))
	return s.renderer.Render(opts)
}

type cropFieldArgs struct {
	ImagePath string  `json:"image_path"`
	JSONPath  string  `json:"json_path"`
	Field     string  `json:"field"`
	Scale     float64 `json:"scale"`
}

func (s *Server) handleCropField(args json.RawMessage) (interface{}, error) {
	var a cropFieldArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Field == "" {
		return nil, fmt.Errorf("field is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if err := render.CheckInputs(a.ImagePath, a.JSONPath); err != nil {
		return nil, err
	}

	doc, err := render.LoadDocument(a.JSONPath)
	if err != nil {
		return nil, err
	}
	var entry *render.Entry
	for i := range doc.Entries {
		if doc.Entries[i].Name == a.Field {
			entry = &doc.Entries[i]
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("field %s has no usable bbox in %s", a.Field, a.JSONPath)
	}

	img, err := s.cache.Load(a.ImagePath)
	if err != nil {
		return nil, errors.NewDecodeError("image", a.ImagePath, err)
	}
	return imaging.EncodeCrop(img, entry.BBox, a.Scale)
}

type clampBoxArgs struct {
	ImagePath string `json:"image_path"`
	BBox      []int  `json:"bbox"`
}

type clampBoxResult struct {
	BBox   nid.BBox `json:"bbox"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

func (s *Server) handleClampBox(args json.RawMessage) (interface{}, error) {
	var a clampBoxArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.BBox) != 4 {
		return nil, fmt.Errorf("bbox must have 4 integers, got %d", len(a.BBox))
	}

	dims, err := imaging.GetDimensions(s.cache, a.ImagePath)
	if err != nil {
		return nil, err
	}

	b := nid.BBox{a.BBox[0], a.BBox[1], a.BBox[2], a.BBox[3]}
	return &clampBoxResult{
		BBox:   imaging.ClampBox(b, dims.Width, dims.Height),
		Width:  dims.Width,
		Height: dims.Height,
	}, nil
}
