package server

import (
	"io"
	"testing"

	"github.com/ironsheep/nid-ocr/internal/logging"
)

func toolMap() map[string]Tool {
	m := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		m[tool.Name] = tool
	}
	return m
}

func TestGetToolDefinitions(t *testing.T) {
	tools := toolMap()

	expectedTools := []string{
		"nid_extract_fields",
		"nid_draw_boxes",
		"nid_crop_field",
		"nid_clamp_box",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || len(props) == 0 {
				t.Fatal("InputSchema missing 'properties'")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("InputSchema missing 'required'")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s is not a declared property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool string
		want []string
	}{
		{"nid_extract_fields", []string{"path"}},
		{"nid_draw_boxes", []string{"image_path", "json_path"}},
		{"nid_crop_field", []string{"image_path", "json_path", "field"}},
		{"nid_clamp_box", []string{"image_path", "bbox"}},
	}

	tools := toolMap()
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			got, _ := tools[tt.tool].InputSchema["required"].([]string)
			if len(got) != len(tt.want) {
				t.Fatalf("required: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("required[%d]: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToolDefinitions_CropScaleDefault(t *testing.T) {
	props := toolMap()["nid_crop_field"].InputSchema["properties"].(map[string]interface{})
	scale, ok := props["scale"].(map[string]interface{})
	if !ok {
		t.Fatal("nid_crop_field should declare scale")
	}
	if scale["default"] != 1.0 {
		t.Errorf("scale default: got %v, want 1.0", scale["default"])
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(Options{Logger: logging.NewLoggerTo(io.Discard, "test")})
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
