// Package report composes concrete field reports from the fieldreport layout
// primitives: a document header followed by a task checklist, a fines table,
// or a single-task reminder.
//
// Composition is synchronous and owns its canvas for the whole call. Input
// filtering and image decoding are the caller's job.
package report

import (
	"math"

	"github.com/lvillar/fieldreport"
)

// Summary describes a composed document.
type Summary struct {
	Kind  Kind
	Pages int
	Tasks int
}

// Composer sequences layout primitives onto one canvas.
type Composer struct {
	canvas fieldreport.Canvas
	cfg    *config
}

// New creates a Composer drawing onto c.
func New(c fieldreport.Canvas, opts ...Option) *Composer {
	return &Composer{canvas: c, cfg: newConfig(opts)}
}

// Compose validates req and draws the whole report. Invalid requests fail
// before anything is drawn.
func (cp *Composer) Compose(req Request) (Summary, error) {
	if err := req.Validate(); err != nil {
		return Summary{}, fieldreport.NewLayoutError("Compose", err)
	}

	pc := fieldreport.NewPageCursor(cp.canvas, fieldreport.WithSpacing(cp.cfg.spacing))
	if err := cp.header(pc, req.Header); err != nil {
		return Summary{}, err
	}

	var err error
	switch req.Kind {
	case KindChecklist:
		err = cp.checklist(pc, req)
	case KindFines:
		err = cp.fines(pc, req)
	case KindReminder:
		err = cp.reminder(pc, req)
	}
	if err != nil {
		return Summary{}, err
	}
	return Summary{Kind: req.Kind, Pages: pc.Page(), Tasks: len(req.Tasks)}, nil
}

// minFontSize floors the sizes derived from the base font.
const minFontSize = 6

// smaller returns f shrunk by d points, never below minFontSize.
func smaller(f fieldreport.Font, d float64) fieldreport.Font {
	return f.WithSize(math.Max(f.Size-d, minFontSize))
}

func (cp *Composer) titleFont(grow float64) fieldreport.Font {
	return cp.cfg.font.Bold().WithSize(cp.cfg.font.Size + grow)
}

func (cp *Composer) details(t fieldreport.TaskRecord) fieldreport.KeyValueBlock {
	return fieldreport.KeyValueBlock{
		Pairs:      t.Details(cp.cfg.dateLayout),
		Font:       cp.cfg.font,
		Spacing:    cp.cfg.spacing,
		LabelColor: fieldreport.Secondary,
		ValueColor: fieldreport.Black,
	}
}
