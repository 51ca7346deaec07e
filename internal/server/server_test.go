package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/ironsheep/nid-ocr/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Options{Logger: logging.NewLoggerTo(io.Discard, "test")})
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.renderer == nil {
		t.Fatal("New() did not initialize renderer")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestMCPResponse_WithError(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &MCPError{
			Code:    -32601,
			Message: "Method not found",
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if strings.Contains(string(data), `"result"`) {
		t.Errorf("error response should omit result: %s", data)
	}

	var decoded MCPResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded.Error == nil || decoded.Error.Code != -32601 {
		t.Errorf("Error: got %+v", decoded.Error)
	}
}

func TestHandleRequest(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		method    string
		wantNil   bool
		wantError int
	}{
		{"initialize", "initialize", false, 0},
		{"ping", "ping", false, 0},
		{"tools list", "tools/list", false, 0},
		{"initialized notification", "notifications/initialized", true, 0},
		{"unknown method", "nonexistent/method", false, -32601},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.handleRequest(ctx, &MCPRequest{JSONRPC: "2.0", ID: "req-1", Method: tt.method})

			if tt.wantNil {
				if resp != nil {
					t.Errorf("%s should return nil response", tt.method)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != "req-1" {
				t.Errorf("ID: got %v, want req-1", resp.ID)
			}
			if tt.wantError == 0 && resp.Error != nil {
				t.Fatalf("Unexpected error: %v", resp.Error)
			}
			if tt.wantError != 0 && (resp.Error == nil || resp.Error.Code != tt.wantError) {
				t.Errorf("Error: got %+v, want code %d", resp.Error, tt.wantError)
			}
		})
	}
}

func TestHandleInitialize(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "nid-ocr-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "0.1.0" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := newTestServer(t)
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var ids []interface{}
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		ids = append(ids, resp.ID)
	}
	if len(ids) != 2 || ids[0] != float64(1) || ids[1] != float64(2) {
		t.Errorf("responses: got ids %v, want [1 2]", ids)
	}
}

func TestServe_CanceledContext(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := s.Serve(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("no responses expected after cancel, got %s", out.String())
	}
}
