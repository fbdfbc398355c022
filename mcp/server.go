// Package mcp implements a Model Context Protocol (MCP) server that exposes
// report generation as tools and resources for AI assistants.
//
// The server communicates via JSON-RPC 2.0 over stdio and implements the
// MCP protocol revision 2024-11-05 for tools and resources.
//
// # Usage
//
// Add to the client configuration:
//
//	{
//	  "mcpServers": {
//	    "fieldreport": {
//	      "command": "fieldreport-mcp"
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
)

// ServerName is reported in the initialize handshake.
const ServerName = "fieldreport-mcp"

// Server is an MCP server that handles JSON-RPC 2.0 messages over stdio.
type Server struct {
	tools     map[string]Tool
	resources map[string]Resource
	input     io.Reader
	output    io.Writer
	logger    *slog.Logger
	mu        sync.Mutex
}

// Tool defines an MCP tool that can be called by the client.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     ToolHandler    `json:"-"`
}

// ToolHandler is a function that executes a tool with the given arguments.
type ToolHandler func(args map[string]any) (ToolResult, error)

// ToolResult is the result returned by a tool execution.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is a piece of content in a tool result.
type ContentBlock struct {
	Type     string `json:"type"` // "text" or "resource"
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64 for binary
}

// Resource defines an MCP resource.
type Resource struct {
	URI         string          `json:"uri"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Handler     ResourceHandler `json:"-"`
}

// ResourceHandler reads a resource and returns its content.
type ResourceHandler func(uri string) ([]ResourceContent, error)

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

// JSON-RPC types
type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewServer creates a new MCP server reading from stdin and writing to stdout.
func NewServer(logger *slog.Logger) *Server {
	return NewServerWithIO(os.Stdin, os.Stdout, logger)
}

// NewServerWithIO creates a new MCP server with custom I/O for testing. A nil
// logger discards log output.
func NewServerWithIO(in io.Reader, out io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
		input:     in,
		output:    out,
		logger:    logger,
	}
}

// AddTool registers a tool with the server.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// AddResource registers a resource with the server.
func (s *Server) AddResource(r Resource) {
	s.resources[r.URI] = r
}

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// Run starts the server and processes messages until EOF.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.input)
	// Generated reports travel back as base64, so lines can be large.
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req jsonrpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("malformed request", "error", err)
			s.sendError(nil, codeParseError, "Parse error", err.Error())
			continue
		}
		s.logger.Debug("request", "method", req.Method)
		s.dispatch(req)
	}
	return scanner.Err()
}

func (s *Server) dispatch(req jsonrpcRequest) {
	var (
		result any
		rerr   *jsonrpcError
	)
	switch req.Method {
	case "initialized", "notifications/initialized":
		return
	case "initialize":
		result = s.initialize()
	case "ping":
		result = map[string]any{}
	case "tools/list":
		result = map[string]any{"tools": s.listTools()}
	case "tools/call":
		result, rerr = s.callTool(req.Params)
	case "resources/list":
		result = map[string]any{"resources": s.listResources()}
	case "resources/read":
		result, rerr = s.readResource(req.Params)
	default:
		rerr = &jsonrpcError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method}
	}
	if rerr != nil {
		s.send(jsonrpcResponse{JSONRPC: "2.0", ID: req.ID, Error: rerr})
		return
	}
	s.send(jsonrpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
}

func (s *Server) initialize() map[string]any {
	return map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": "1.0.0",
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Server) listTools() []map[string]any {
	tools := make([]map[string]any, 0, len(s.tools))
	for _, name := range sortedKeys(s.tools) {
		t := s.tools[name]
		tools = append(tools, map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.InputSchema,
		})
	}
	return tools
}

func invalidParams(err error) *jsonrpcError {
	return &jsonrpcError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
}

func (s *Server) callTool(raw json.RawMessage) (any, *jsonrpcError) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		return nil, &jsonrpcError{Code: codeInvalidParams, Message: "Unknown tool", Data: params.Name}
	}

	result, err := tool.Handler(params.Arguments)
	if err != nil {
		// Tool failures are results the client shows, not protocol errors.
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}, nil
	}
	return result, nil
}

func (s *Server) listResources() []map[string]any {
	resources := make([]map[string]any, 0, len(s.resources))
	for _, uri := range sortedKeys(s.resources) {
		r := s.resources[uri]
		res := map[string]any{"uri": r.URI, "name": r.Name}
		if r.Description != "" {
			res["description"] = r.Description
		}
		if r.MIMEType != "" {
			res["mimeType"] = r.MIMEType
		}
		resources = append(resources, res)
	}
	return resources
}

func (s *Server) readResource(raw json.RawMessage) (any, *jsonrpcError) {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}
	resource, ok := s.resources[params.URI]
	if !ok {
		return nil, &jsonrpcError{Code: codeInvalidParams, Message: "Unknown resource", Data: params.URI}
	}
	contents, err := resource.Handler(params.URI)
	if err != nil {
		return nil, &jsonrpcError{Code: codeInternalError, Message: "Resource error", Data: err.Error()}
	}
	return map[string]any{"contents": contents}, nil
}

func (s *Server) sendError(id *json.RawMessage, code int, message string, data any) {
	s.send(jsonrpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &jsonrpcError{Code: code, Message: message, Data: data},
	})
}

func (s *Server) send(resp jsonrpcResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("encoding response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := s.output.Write(data); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
