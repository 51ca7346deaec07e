package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Extraction
		{
			Name:        "nid_extract_fields",
			Description: "Run OCR on the front of a Bangladesh national ID card and extract english_name, bangla_name, father_name, mother_name, date_of_birth and id_no, each with the bounding box of its source line. Absent fields are null.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the card image",
					},
					"json_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the fields JSON to",
					},
					"text_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the raw OCR text to, one line per OCR line",
					},
				},
				"required": []string{"path"},
			},
		},

		// Rendering
		{
			Name:        "nid_draw_boxes",
			Description: "Draw a colored, labeled box for every field in a fields JSON onto the card image. Writes <stem>_boxes<ext> next to the image and, when crops are enabled, one image per field under <stem>_crops/.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the card image",
					},
					"json_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the fields JSON",
					},
					"crops": map[string]interface{}{
						"type":        "boolean",
						"description": "Also save each field region as its own image. Defaults to the server setting (NID_CROPS)",
					},
				},
				"required": []string{"image_path", "json_path"},
			},
		},
		{
			Name:        "nid_crop_field",
			Description: "Crop one field's box (clamped to the image) from the card image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the card image",
					},
					"json_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the fields JSON",
					},
					"field": map[string]interface{}{
						"type":        "string",
						"description": "Field name, e.g. id_no",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"image_path", "json_path", "field"},
			},
		},
		{
			Name:        "nid_clamp_box",
			Description: "Clamp a [x_min, y_min, x_max, y_max] box to the bounds of an image so it covers at least one pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image",
					},
					"bbox": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Box as [x_min, y_min, x_max, y_max]",
					},
				},
				"required": []string{"image_path", "bbox"},
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
