package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rehearse/internal/adapters/share"
	"rehearse/internal/application"
	"rehearse/internal/domain"
	"rehearse/internal/ports"
)

// RegisterReadTools adds all read-only annotation tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, source ports.DocumentSource, baseURL string) {
	s.AddTool(listAnnotationsTool(), listAnnotationsHandler(source))
	s.AddTool(getAnnotationTool(), getAnnotationHandler(source))
	s.AddTool(tocTool(), tocHandler(source))
	s.AddTool(checkTool(), checkHandler(source))
	s.AddTool(deepLinkTool(), deepLinkHandler(source, baseURL))
}

// --- list_annotations ---

func listAnnotationsTool() mcp.Tool {
	return mcp.NewTool("list_annotations",
		mcp.WithDescription("List every annotation in the document in playback order: id, timestamp, title."),
	)
}

func listAnnotationsHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := source.Load()
		if err != nil {
			return toolError(err)
		}
		if len(doc.Annotations) == 0 {
			return mcp.NewToolResultText("No annotations."), nil
		}

		var sb strings.Builder
		for _, ann := range doc.Annotations {
			fmt.Fprintf(&sb, "%s  %s  %s\n", formatMs(ann.TimestampMs), ann.ID, ann.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_annotation ---

func getAnnotationTool() mcp.Tool {
	return mcp.NewTool("get_annotation",
		mcp.WithDescription("Read one annotation by id: all fields including description and highlight script."),
		mcp.WithString("id",
			mcp.Description("Annotation id (e.g. notebook-area)"),
			mcp.Required(),
		),
	)
}

func getAnnotationHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		doc, err := source.Load()
		if err != nil {
			return toolError(err)
		}
		ann, err := application.FindAnnotation(doc, id)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "id: %s\ntitle: %s\ntimestamp: %dms\n", ann.ID, ann.Title, ann.TimestampMs)
		if ann.Color != "" {
			fmt.Fprintf(&sb, "color: %s\n", ann.Color)
		}
		if ann.Autopause != nil {
			fmt.Fprintf(&sb, "autopause: %v\n", *ann.Autopause)
		}
		if ann.SectionID != "" {
			fmt.Fprintf(&sb, "section: %s\n", ann.SectionID)
		}
		if ann.Description != "" {
			fmt.Fprintf(&sb, "\n%s\n", ann.Description)
		}
		if ann.HasScript() {
			fmt.Fprintf(&sb, "\nhighlight script:\n%s\n", ann.HighlightScript)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- toc ---

func tocTool() mcp.Tool {
	return mcp.NewTool("toc",
		mcp.WithDescription("Display the table of contents: sections with their annotations in authoring order."),
	)
}

func tocHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := source.Load()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", doc.Title)
		for _, sec := range doc.Sections {
			fmt.Fprintf(&sb, "  %s %s\n", sec.ID, sec.Title)
			for _, ann := range sec.Annotations {
				fmt.Fprintf(&sb, "    %s %s (%s)\n", ann.ID, ann.Title, formatMs(ann.TimestampMs))
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- check ---

func checkTool() mcp.Tool {
	return mcp.NewTool("check",
		mcp.WithDescription("Lint the annotation document: duplicate ids, missing timestamps, backward section ordering."),
	)
}

func checkHandler(source ports.DocumentSource) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := source.Load()
		if err != nil {
			return toolError(err)
		}

		issues := application.Lint(doc)
		if len(issues) == 0 {
			return mcp.NewToolResultText("No issues found."), nil
		}
		var sb strings.Builder
		for _, issue := range issues {
			sb.WriteString(issue.String())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- deep_link ---

func deepLinkTool() mcp.Tool {
	return mcp.NewTool("deep_link",
		mcp.WithDescription("Build the shareable deep link for an annotation id."),
		mcp.WithString("id",
			mcp.Description("Annotation id"),
			mcp.Required(),
		),
	)
}

func deepLinkHandler(source ports.DocumentSource, baseURL string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		doc, err := source.Load()
		if err != nil {
			return toolError(err)
		}
		if _, err := application.FindAnnotation(doc, id); err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(share.DeepLink(baseURL, id)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatMs(ms int64) string {
	return domain.FormatTimestamp(ms)
}
