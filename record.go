package fieldreport

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout formats due and close dates.
const DefaultDateLayout = "2006-01-02"

// TaskRecord is one task as supplied by the host application. Records are read
// only for the duration of a generation.
type TaskRecord struct {
	ID          string
	Title       string
	Description string
	Plant       string
	Location    string
	Size        float64
	Unit        string
	Due         time.Time
	Closed      *time.Time
}

// SizeString formats the size with its unit, or "" when no size is set.
func (t TaskRecord) SizeString() string {
	if t.Size == 0 && t.Unit == "" {
		return ""
	}
	s := strconv.FormatFloat(t.Size, 'f', -1, 64)
	return strings.TrimSpace(s + " " + t.Unit)
}

// Details returns the record's metadata as key-value pairs, omitting empty
// values. Dates use layout, or DefaultDateLayout when layout is "".
func (t TaskRecord) Details(layout string) []KeyValue {
	if layout == "" {
		layout = DefaultDateLayout
	}
	var kv []KeyValue
	add := func(label, value string) {
		if value != "" {
			kv = append(kv, KeyValue{Label: label, Value: value})
		}
	}
	add("Plant", t.Plant)
	add("Location", t.Location)
	add("Size", t.SizeString())
	if !t.Due.IsZero() {
		add("Due", t.Due.Format(layout))
	}
	if t.Closed != nil && !t.Closed.IsZero() {
		add("Closed", t.Closed.Format(layout))
	}
	return kv
}

// Overdue reports whether the task was closed after its due date, or is still
// open past its due date at asOf.
func (t TaskRecord) Overdue(asOf time.Time) bool {
	if t.Due.IsZero() {
		return false
	}
	if t.Closed != nil {
		return t.Closed.After(t.Due)
	}
	return asOf.After(t.Due)
}
