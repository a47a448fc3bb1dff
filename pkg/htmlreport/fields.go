// Package htmlreport renders epiccheck results as a self-contained HTML document.
package htmlreport

import (
	"path/filepath"
	"time"

	"github.com/dkoosis/epiccheck-report/pkg/violation"
)

// DateLayout is the local date/time format shown in the report header.
const DateLayout = "02/01/2006 at 15:04"

// FilesCheckedUnknown is rendered in the files-checked card. The checker
// output does not carry a file count, so the value is left unresolved.
const FilesCheckedUnknown = "?"

const (
	symbolPass = "✅"
	symbolFail = "❌"
)

// Meta carries the non-count inputs of a report.
type Meta struct {
	ProjectPath string
	GeneratedAt time.Time
	Output      string // raw checker output, rendered verbatim (escaped)
	Version     string
}

// Severity is one per-marker summary card.
type Severity struct {
	Label string
	Class string
	Count int
}

// Fields is the complete set of named values substituted into the template.
type Fields struct {
	ProjectName  string
	Date         string
	StatusClass  string
	StatusSymbol string
	StatusText   string
	FilesChecked string
	Total        int
	Fatal        int
	Major        int
	Minor        int
	Info         int
	Severities   []Severity
	Conforming   bool
	Output       string
	Version      string
}

// NewFields maps classification results and metadata onto template fields.
func NewFields(counts violation.Counts, meta Meta) Fields {
	status := counts.Status()
	f := Fields{
		ProjectName:  ProjectName(meta.ProjectPath),
		Date:         meta.GeneratedAt.Format(DateLayout),
		StatusText:   status.String(),
		FilesChecked: FilesCheckedUnknown,
		Total:        counts.Total,
		Fatal:        counts.Fatal,
		Major:        counts.Major,
		Minor:        counts.Minor,
		Info:         counts.Info,
		Conforming:   status == violation.Conforming,
		Output:       meta.Output,
		Version:      meta.Version,
	}
	if f.Conforming {
		f.StatusClass, f.StatusSymbol = "success", symbolPass
	} else {
		f.StatusClass, f.StatusSymbol = "danger", symbolFail
	}
	for _, m := range violation.Markers() {
		f.Severities = append(f.Severities, Severity{
			Label: violation.Label(m),
			Class: severityClass(m),
			Count: counts.Get(m),
		})
	}
	return f
}

// ProjectName returns the last segment of path, ignoring trailing separators.
func ProjectName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

func severityClass(marker string) string {
	switch marker {
	case violation.MarkerFatal:
		return "danger"
	case violation.MarkerMajor, violation.MarkerMinor:
		return "warning"
	default:
		return "info"
	}
}
