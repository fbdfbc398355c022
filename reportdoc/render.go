package reportdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/report"
)

// Parse decodes a document. Input whose first non-blank byte is '{' is read as
// JSON, anything else as YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("reportdoc: parsing JSON document: %w", err)
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reportdoc: parsing YAML document: %w", err)
	}
	return &doc, nil
}

// Render parses a document and writes the resulting PDF to w.
func Render(w io.Writer, data []byte, l *Loader, opts ...report.Option) (report.Summary, error) {
	doc, err := Parse(data)
	if err != nil {
		return report.Summary{}, err
	}
	return RenderDocument(w, doc, l, opts...)
}

// RenderDocument renders a Document to a PDF written to w.
func RenderDocument(w io.Writer, doc *Document, l *Loader, opts ...report.Option) (report.Summary, error) {
	req, err := Request(doc, l)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Write(w, req, opts...)
}

// Request resolves doc into a report request: dates are parsed, the filter is
// applied and images are loaded through l.
func Request(doc *Document, l *Loader) (report.Request, error) {
	kind, err := report.ParseKind(doc.Kind)
	if err != nil {
		return report.Request{}, err
	}

	asOf := time.Now()
	if doc.AsOf != "" {
		if asOf, err = parseDate(doc.AsOf); err != nil {
			return report.Request{}, err
		}
	}

	tasks, images, err := records(doc.Tasks, l)
	if err != nil {
		return report.Request{}, err
	}
	if tasks, err = FilterTasks(tasks, doc.Filter, asOf); err != nil {
		return report.Request{}, err
	}

	req := report.Request{
		Kind:      kind,
		Tasks:     tasks,
		Images:    images,
		Signature: doc.Signature,
		Header: report.Header{
			Title:     doc.Header.Title,
			Subtitle:  doc.Header.Subtitle,
			Reference: doc.Header.Reference,
		},
	}
	if len(doc.SignatureParties) > len(req.SignatureParties) {
		return report.Request{}, fmt.Errorf("reportdoc: at most %d signature parties, got %d",
			len(req.SignatureParties), len(doc.SignatureParties))
	}
	copy(req.SignatureParties[:], doc.SignatureParties)

	for _, f := range doc.Header.Metadata {
		req.Header.Metadata = append(req.Header.Metadata, fieldreport.KeyValue{Label: f.Label, Value: f.Value})
	}
	if doc.Header.Logo != "" {
		if logo, err := l.Load(doc.Header.Logo); err != nil {
			l.logger().Warn("skipping logo", "source", abbreviate(doc.Header.Logo), "error", err)
		} else {
			req.Header.Logo = logo
		}
	}
	return req, nil
}

func records(in []Task, l *Loader) ([]fieldreport.TaskRecord, map[string][]fieldreport.Image, error) {
	tasks := make([]fieldreport.TaskRecord, 0, len(in))
	images := make(map[string][]fieldreport.Image)
	for i, t := range in {
		rec := fieldreport.TaskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Plant:       t.Plant,
			Location:    t.Location,
			Size:        t.Size,
			Unit:        t.Unit,
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("task-%d", i+1)
		}
		if t.Due != "" {
			due, err := parseDate(t.Due)
			if err != nil {
				return nil, nil, fmt.Errorf("task %s due: %w", rec.ID, err)
			}
			rec.Due = due
		}
		if t.Closed != "" {
			closed, err := parseDate(t.Closed)
			if err != nil {
				return nil, nil, fmt.Errorf("task %s closed: %w", rec.ID, err)
			}
			rec.Closed = &closed
		}
		if imgs := l.LoadAll(t.Images); len(imgs) > 0 {
			images[rec.ID] = append(images[rec.ID], imgs...)
		}
		tasks = append(tasks, rec)
	}
	return tasks, images, nil
}
