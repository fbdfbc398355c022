package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/lvillar/fieldreport/report"
	"github.com/lvillar/fieldreport/reportdoc"
)

// RegisterDefaultTools adds the report tools to the server. opts apply to
// every generated report, ahead of per-call settings.
func RegisterDefaultTools(s *Server, opts ...report.Option) {
	h := &toolHandlers{opts: opts, server: s}
	s.AddTool(generateReportTool(h))
	s.AddTool(measureReportTool(h))
	s.AddTool(filterTasksTool(h))
}

type toolHandlers struct {
	opts   []report.Option
	server *Server
}

var documentProperty = map[string]any{
	"description": "Report document (see report://schema): an object, or a JSON/YAML string",
}

var baseDirProperty = map[string]any{
	"type":        "string",
	"description": "Directory that relative image paths are resolved against",
}

func generateReportTool(h *toolHandlers) Tool {
	return Tool{
		Name:        "generate_report",
		Description: "Generate a checklist, fines or reminder PDF report from a report document. Returns the PDF as base64, or writes it to outputPath.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": documentProperty,
				"baseDir":  baseDirProperty,
				"outputPath": map[string]any{
					"type":        "string",
					"description": "Optional file path to save the PDF. If omitted, returns base64.",
				},
				"documentId": map[string]any{
					"type":        "string",
					"description": "Document identifier; a random UUID when omitted",
				},
			},
			"required": []string{"document"},
		},
		Handler: h.generate,
	}
}

func (h *toolHandlers) generate(args map[string]any) (ToolResult, error) {
	pdf, sum, err := h.render(args)
	if err != nil {
		return ToolResult{}, err
	}

	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return textResult(fmt.Sprintf("%s report created: %s (%d pages, %d bytes)",
			sum.Kind, outputPath, sum.Pages, len(pdf))), nil
	}

	return ToolResult{
		Content: []ContentBlock{
			{
				Type: "text",
				Text: fmt.Sprintf("%s report created (%d pages, %d bytes).", sum.Kind, sum.Pages, len(pdf)),
			},
			{
				Type:     "resource",
				MIMEType: "application/pdf",
				Data:     base64.StdEncoding.EncodeToString(pdf),
			},
		},
	}, nil
}

func measureReportTool(h *toolHandlers) Tool {
	return Tool{
		Name:        "measure_report",
		Description: "Lay out a report document without saving it and return its kind, page count, task count and size in bytes.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": documentProperty,
				"baseDir":  baseDirProperty,
			},
			"required": []string{"document"},
		},
		Handler: h.measure,
	}
}

func (h *toolHandlers) measure(args map[string]any) (ToolResult, error) {
	pdf, sum, err := h.render(args)
	if err != nil {
		return ToolResult{}, err
	}
	return jsonResult(map[string]any{
		"kind":  sum.Kind,
		"pages": sum.Pages,
		"tasks": sum.Tasks,
		"bytes": len(pdf),
	})
}

func filterTasksTool(h *toolHandlers) Tool {
	return Tool{
		Name:        "filter_tasks",
		Description: "Apply a task filter (all, overdue_closed, open_overdue) to a report document and return the IDs of the kept tasks.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"document": documentProperty,
				"filter": map[string]any{
					"type":        "string",
					"enum":        reportdoc.Filters,
					"description": "Overrides the document's filter",
				},
				"asOf": map[string]any{
					"type":        "string",
					"description": "Reference date (2006-01-02 or RFC 3339) for open tasks",
				},
			},
			"required": []string{"document"},
		},
		Handler: h.filter,
	}
}

func (h *toolHandlers) filter(args map[string]any) (ToolResult, error) {
	doc, err := documentArg(args)
	if err != nil {
		return ToolResult{}, err
	}
	if f, ok := args["filter"].(string); ok && f != "" {
		doc.Filter = f
	}
	if asOf, ok := args["asOf"].(string); ok && asOf != "" {
		doc.AsOf = asOf
	}
	// Images are irrelevant to filtering.
	for i := range doc.Tasks {
		doc.Tasks[i].Images = nil
	}
	doc.Header.Logo = ""

	req, err := reportdoc.Request(doc, nil)
	if err != nil {
		return ToolResult{}, err
	}
	ids := make([]string, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		ids = append(ids, t.ID)
	}
	return jsonResult(map[string]any{
		"filter": doc.Filter,
		"kept":   ids,
		"total":  len(doc.Tasks),
	})
}

// render composes the document in args into PDF bytes.
func (h *toolHandlers) render(args map[string]any) ([]byte, report.Summary, error) {
	doc, err := documentArg(args)
	if err != nil {
		return nil, report.Summary{}, err
	}
	l := &reportdoc.Loader{Logger: h.server.logger}
	if dir, ok := args["baseDir"].(string); ok {
		l.BaseDir = dir
	}
	req, err := reportdoc.Request(doc, l)
	if err != nil {
		return nil, report.Summary{}, err
	}

	// A random ID unless the server options or the call name one.
	opts := append([]report.Option{report.WithDocumentID(uuid.NewString())}, h.opts...)
	if id, ok := args["documentId"].(string); ok && id != "" {
		opts = append(opts, report.WithDocumentID(id))
	}

	pdf, sum, err := report.Generate(req, opts...)
	if err != nil {
		return nil, report.Summary{}, fmt.Errorf("rendering PDF: %w", err)
	}
	return pdf, sum, nil
}

// documentArg decodes the "document" argument, given either as a JSON object
// or as a JSON/YAML string.
func documentArg(args map[string]any) (*reportdoc.Document, error) {
	raw, ok := args["document"]
	if !ok {
		return nil, fmt.Errorf("missing 'document' argument")
	}
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding document: %w", err)
		}
		data = b
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty 'document' argument")
	}
	return reportdoc.Parse(data)
}

func textResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

func jsonResult(v any) (ToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return textResult(string(b)), nil
}
