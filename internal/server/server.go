package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font"

	"github.com/ironsheep/nid-ocr/internal/imaging"
	"github.com/ironsheep/nid-ocr/internal/logging"
	"github.com/ironsheep/nid-ocr/internal/ocr"
	"github.com/ironsheep/nid-ocr/internal/render"
)

const (
	serverName    = "nid-ocr-mcp"
	serverVersion = "0.1.0"
)

// Options configures a Server.
type Options struct {
	// Provider supplies OCR lines for nid_extract_fields.
	Provider ocr.LineProvider

	// Face renders box labels. Nil selects the built-in bitmap face.
	Face font.Face

	// Crops is the nid_draw_boxes default when the call omits "crops".
	Crops bool

	// Logger defaults to an "mcp" logger on stderr.
	Logger *logging.Logger
}

// Server handles MCP protocol communication
type Server struct {
	cache    *imaging.ImageCache
	provider ocr.LineProvider
	renderer *render.Renderer
	crops    bool
	logger   *logging.Logger
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server instance
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("mcp")
	}
	cache := imaging.NewImageCache()
	return &Server{
		cache:    cache,
		provider: opts.Provider,
		renderer: render.New(cache, opts.Face, logger),
		crops:    opts.Crops,
		logger:   logger,
	}
}

// Run serves MCP on stdin and stdout until stdin closes.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to w.
// It returns when r is exhausted or ctx is canceled.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("Failed to parse request", "error", err)
			continue
		}

		resp := s.handleRequest(ctx, &req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("Failed to encode response", "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    serverName,
				"version": serverVersion,
			},
		},
	}
}
