// Package mcp exposes the compliance engine over the Model Context Protocol
// so editors and agents can scan paths and check source snippets in place.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/tokenlint/pkg/mcplog"
	"github.com/gnana997/tokenlint/pkg/scanner"
	"github.com/gnana997/tokenlint/pkg/vocabulary"
)

const serverVersion = "0.1.0-dev"

// Server wires the scan engine into an MCP tool surface.
type Server struct {
	mcpServer *server.MCPServer
	scanner   *scanner.Scanner
	vocab     *vocabulary.Vocabulary
	logger    *mcplog.Logger // nil disables tool-call logging
}

// NewServer creates an MCP server backed by the given scanner and vocabulary.
// logger may be nil.
func NewServer(sc *scanner.Scanner, vocab *vocabulary.Vocabulary, logger *mcplog.Logger) *Server {
	s := &Server{scanner: sc, vocab: vocab, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("tokenlint", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: scanPathsTool(), Handler: s.handleScanPaths},
		server.ServerTool{Tool: checkSourceTool(), Handler: s.handleCheckSource},
		server.ServerTool{Tool: getVocabularyTool(), Handler: s.handleGetVocabulary},
		server.ServerTool{Tool: listRulesTool(), Handler: s.handleListRules},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
