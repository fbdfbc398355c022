package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/report"
	"github.com/lvillar/fieldreport/reportdoc"
)

// RegisterDefaultResources adds the report reference resources to the server.
// Resources use the report:// scheme.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "report://schema",
		Name:        "Report Document Schema",
		Description: "Fields accepted by generate_report and measure_report, with an example document.",
		MIMEType:    "application/json",
		Handler:     handleSchemaResource,
	})

	s.AddResource(Resource{
		URI:         "report://kinds",
		Name:        "Report Kinds",
		Description: "Supported report kinds, task filters and header code symbologies.",
		MIMEType:    "application/json",
		Handler:     handleKindsResource,
	})
}

var kindDescriptions = map[report.Kind]string{
	report.KindChecklist: "Two-column grid of task cards with thumbnails and details",
	report.KindFines:     "Paginated table of tasks with a repeating header and a task count footer",
	report.KindReminder:  "One task at full width: gallery, description, details and optional signature lines",
}

var schema = map[string]any{
	"kind":             "checklist | fines | reminder",
	"filter":           "all | overdue_closed | open_overdue (default all)",
	"asOf":             "reference date for open_overdue, 2006-01-02 or RFC 3339 (default now)",
	"signature":        "bool, reminder only: append signature lines",
	"signatureParties": "up to two signer names",
	"header": map[string]any{
		"title":     "string",
		"subtitle":  "string",
		"logo":      "image source: file path or data:image/...;base64,... URI",
		"reference": "string encoded in the header code (default: document ID)",
		"metadata":  "[{label, value}]",
	},
	"tasks": "[{id, title, description, plant, location, size, unit, due, closed, images[]}]",
	"example": reportdoc.Document{
		Kind: "reminder",
		Header: reportdoc.Header{
			Title:    "Task reminder",
			Metadata: []reportdoc.Field{{Label: "Site", Value: "North plant"}},
		},
		Signature: true,
		Tasks: []reportdoc.Task{{
			ID:       "T-7",
			Title:    "Repair guard rail",
			Plant:    "North",
			Location: "Loading dock",
			Due:      "2024-05-01",
			Images:   []string{"photos/rail.jpg"},
		}},
	},
}

func handleSchemaResource(uri string) ([]ResourceContent, error) {
	return jsonContent(uri, schema)
}

func handleKindsResource(uri string) ([]ResourceContent, error) {
	kinds := make([]map[string]any, 0, len(report.Kinds))
	for _, k := range report.Kinds {
		kinds = append(kinds, map[string]any{
			"kind":        k,
			"description": kindDescriptions[k],
		})
	}
	return jsonContent(uri, map[string]any{
		"kinds":   kinds,
		"filters": reportdoc.Filters,
		"symbologies": []fieldreport.Symbology{
			fieldreport.SymbologyQR,
			fieldreport.SymbologyCode128,
			fieldreport.SymbologyPDF417,
		},
	})
}

func jsonContent(uri string, v any) ([]ResourceContent, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", uri, err)
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(b),
	}}, nil
}
