// Package server implements the MCP (Model Context Protocol) server for layer compositing.
//
// This package provides a JSON-RPC 2.0 server that exposes the compositing
// engine through the MCP protocol, so an MCP client can assemble NFT artwork
// from layer images and check the result pixel by pixel.
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
// Images are passed inline, either as data URLs or as bare base64.
//
// Compositing:
//   - composite_images: Blend an overlay onto a base
//   - composite_multiple_layers: Blend an ordered layer list onto a base
//   - generate_preview: Resize both inputs to a target size, then blend
//
// Inspection:
//   - image_info: Dimensions, format and alpha presence
//   - image_sample_color: Exact RGBA at a pixel
//
// Compositing tools return the result as a PNG data URL together with its
// dimensions.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, naming the failing image or layer index
//
// # Usage
//
//	eng := engine.New(opts)
//	srv := server.New(eng)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
