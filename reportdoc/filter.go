package reportdoc

import (
	"fmt"
	"time"

	"github.com/lvillar/fieldreport"
)

// Task filters.
const (
	FilterAll           = "all"
	FilterOverdueClosed = "overdue_closed" // closed after the due date
	FilterOpenOverdue   = "open_overdue"   // still open past the due date
)

// Filters lists the supported filter names.
var Filters = []string{FilterAll, FilterOverdueClosed, FilterOpenOverdue}

// FilterTasks keeps the tasks matching filter, preserving order. asOf is the
// reference time for open tasks.
func FilterTasks(tasks []fieldreport.TaskRecord, filter string, asOf time.Time) ([]fieldreport.TaskRecord, error) {
	var keep func(fieldreport.TaskRecord) bool
	switch filter {
	case "", FilterAll:
		return tasks, nil
	case FilterOverdueClosed:
		keep = func(t fieldreport.TaskRecord) bool {
			return t.Closed != nil && t.Overdue(asOf)
		}
	case FilterOpenOverdue:
		keep = func(t fieldreport.TaskRecord) bool {
			return t.Closed == nil && t.Overdue(asOf)
		}
	default:
		return nil, fmt.Errorf("reportdoc: unknown filter %q", filter)
	}

	var out []fieldreport.TaskRecord
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("reportdoc: invalid date %q", s)
	}
	return t, nil
}
