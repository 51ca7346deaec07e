// Package server implements the MCP (Model Context Protocol) server for NID
// field extraction and visualisation.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - nid_extract_fields: OCR a card image and extract the six fields
//   - nid_draw_boxes: Draw labeled field boxes and optional per-field crops
//   - nid_crop_field: Return one field region as base64 PNG
//   - nid_clamp_box: Clamp a box to an image's bounds
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server process
// and shared by all tools.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The error message, e.g. "Image not found: /cards/front.png"
//
// # Usage
//
//	srv := server.New(server.Options{Provider: provider, Crops: true})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
