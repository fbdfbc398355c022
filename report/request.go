package report

import (
	"fmt"

	"github.com/lvillar/fieldreport"
)

// Kind selects the report body.
type Kind string

// Report kinds.
const (
	KindChecklist Kind = "checklist" // two-column card grid over all tasks
	KindFines     Kind = "fines"     // paginated fines table
	KindReminder  Kind = "reminder"  // single full-width task
)

// Kinds lists the supported report kinds.
var Kinds = []Kind{KindChecklist, KindFines, KindReminder}

// ParseKind converts a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown report kind %q", fieldreport.ErrInvalidGenerationSequence, s)
}

// Header is the document header block.
type Header struct {
	Title     string
	Subtitle  string
	Logo      fieldreport.Image // optional
	Reference string            // encoded in the header code; defaults to the document ID
	Metadata  []fieldreport.KeyValue
}

// Request is everything one report generation needs. Tasks must already be
// filtered for the kind, and Images must already be decoded.
type Request struct {
	Kind   Kind
	Header Header
	Tasks  []fieldreport.TaskRecord
	// Images maps a task ID to its images in display order.
	Images map[string][]fieldreport.Image
	// Signature appends the signature template to a reminder.
	Signature bool
	// SignatureParties names the two signing parties. Defaults are used for
	// empty entries.
	SignatureParties [2]string
}

// Validate reports whether req can be composed.
func (req Request) Validate() error {
	switch req.Kind {
	case KindChecklist, KindFines:
	case KindReminder:
		if len(req.Tasks) != 1 {
			return fmt.Errorf("%w: reminder needs exactly one task, got %d",
				fieldreport.ErrInvalidGenerationSequence, len(req.Tasks))
		}
	default:
		return fmt.Errorf("%w: unknown report kind %q", fieldreport.ErrInvalidGenerationSequence, req.Kind)
	}
	return nil
}

func (req Request) imagesFor(t fieldreport.TaskRecord) []fieldreport.Image {
	if req.Images == nil {
		return nil
	}
	return req.Images[t.ID]
}
