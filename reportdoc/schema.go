// Package reportdoc reads declarative report documents in JSON or YAML and
// turns them into report requests.
//
// It is the host side of report generation: it resolves image sources from
// disk or data URIs, applies the task filters, and hands a fully resolved
// request to the report package.
//
// Example YAML:
//
//	kind: fines
//	filter: overdue_closed
//	header:
//	  title: Overdue tasks
//	  metadata:
//	    - {label: Site, value: North plant}
//	tasks:
//	  - id: T-1
//	    title: Replace filter
//	    plant: North
//	    due: 2024-03-01
//	    closed: 2024-03-09
//	    images: [photos/t1.jpg]
package reportdoc

// Document is the top-level report description.
type Document struct {
	Kind             string   `json:"kind" yaml:"kind"`                                             // checklist, fines, reminder
	Filter           string   `json:"filter,omitempty" yaml:"filter,omitempty"`                     // all, overdue_closed, open_overdue
	AsOf             string   `json:"asOf,omitempty" yaml:"asOf,omitempty"`                         // reference date for open_overdue
	Signature        bool     `json:"signature,omitempty" yaml:"signature,omitempty"`               // reminder signature template
	SignatureParties []string `json:"signatureParties,omitempty" yaml:"signatureParties,omitempty"` // up to two signer names
	Header           Header   `json:"header" yaml:"header"`
	Tasks            []Task   `json:"tasks" yaml:"tasks"`
}

// Header describes the document header block.
type Header struct {
	Title     string  `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle  string  `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Logo      string  `json:"logo,omitempty" yaml:"logo,omitempty"` // image source
	Reference string  `json:"reference,omitempty" yaml:"reference,omitempty"`
	Metadata  []Field `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field is a label/value pair.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Task is one task record. Dates are "2006-01-02" or RFC 3339.
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Plant       string   `json:"plant,omitempty" yaml:"plant,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Size        float64  `json:"size,omitempty" yaml:"size,omitempty"`
	Unit        string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Due         string   `json:"due,omitempty" yaml:"due,omitempty"`
	Closed      string   `json:"closed,omitempty" yaml:"closed,omitempty"`
	Images      []string `json:"images,omitempty" yaml:"images,omitempty"` // file paths or data URIs
}
