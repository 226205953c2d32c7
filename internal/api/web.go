package api

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"github.com/luo-one/organizer/internal/database/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Display layouts used by the templates
const (
	displayDateTime = "Jan 02, 2006 15:04"
	displayDate     = "Mon, Jan 02, 2006"
)

// templateFuncs are available to every page
var templateFuncs = template.FuncMap{
	"formatDateTime": formatDateTime,
	"formatDate":     formatDate,
	"formatClock":    formatClock,
	"isOverdue":      isOverdue,
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(displayDateTime)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(displayDate)
}

// formatClock renders an optional HH:MM column, dashes when unset
func formatClock(v *string) string {
	if v == nil || *v == "" {
		return "--:--"
	}
	return *v
}

func isOverdue(s models.Submission, now time.Time) bool {
	return s.IsOverdue(now)
}

// loadTemplates parses every embedded page together with the shared layout
func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// staticFiles exposes the embedded static directory at its root
func staticFiles() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
