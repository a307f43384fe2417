package mcp

import "github.com/mark3labs/mcp-go/mcp"

func scanPathsTool() mcp.Tool {
	return mcp.NewTool("scan_paths",
		mcp.WithDescription("Scan a directory tree for design token violations and return the full scan result"),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Directory to scan"),
		),
		mcp.WithString("include",
			mcp.Description("Comma-separated doublestar include patterns (defaults to UI source extensions)"),
		),
		mcp.WithString("exclude",
			mcp.Description("Comma-separated doublestar exclude patterns (defaults to build output and node_modules)"),
		),
	)
}

func checkSourceTool() mcp.Tool {
	return mcp.NewTool("check_source",
		mcp.WithDescription("Check a source snippet for design token violations without touching disk"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Source code to check"),
		),
		mcp.WithString("file_path",
			mcp.Description("Path to attribute violations to (defaults to snippet.tsx)"),
		),
	)
}

func getVocabularyTool() mcp.Tool {
	return mcp.NewTool("get_vocabulary",
		mcp.WithDescription("Return the active token vocabulary: spacing scale, typography sizes, font weights, semantic color tokens, component heights"),
	)
}

func listRulesTool() mcp.Tool {
	return mcp.NewTool("list_rules",
		mcp.WithDescription("List the compliance rules with their categories and severities"),
	)
}
