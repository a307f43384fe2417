package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/tokenlint/pkg/discovery"
	"github.com/gnana997/tokenlint/pkg/rules"
)

// jsonResult marshals v as an indented text result. Tool output is JSON text
// so agents can parse it without a custom content type.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleScanPaths(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := req.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := discovery.Options{
		Include: splitPatterns(req.GetString("include", "")),
		Exclude: splitPatterns(req.GetString("exclude", "")),
	}
	files, err := discovery.Discover(root, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %v", err)), nil
	}

	result := s.scanner.Scan(ctx, files)
	return jsonResult(result)
}

func (s *Server) handleCheckSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path := req.GetString("file_path", "snippet.tsx")

	fr := s.scanner.ScanContent(path, []byte(code))
	return jsonResult(fr)
}

func (s *Server) handleGetVocabulary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"spacing_scale":        s.vocab.SpacingValues(),
		"typography_sizes":     s.vocab.FontSizeValues(),
		"max_font_size":        s.vocab.MaxFontSize(),
		"font_weights":         s.vocab.FontWeightValues(),
		"semantic_color_names": s.vocab.ColorTokenNames(),
		"component_heights":    s.vocab.ComponentHeightValues(),
	})
}

func (s *Server) handleListRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type ruleInfo struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Severity string `json:"severity"`
	}
	var out []ruleInfo
	for _, r := range rules.All() {
		out = append(out, ruleInfo{
			ID:       r.ID,
			Category: string(r.Category),
			Severity: string(r.Severity),
		})
	}
	return jsonResult(out)
}

// splitPatterns turns a comma-separated pattern argument into a slice,
// dropping empty segments. An empty input yields nil so defaults apply.
func splitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
