// Package views renders the HTML pages of the web surface from
// embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gridironlabs/keeper/internal/league"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"optInt": func(v *int) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *v)
	},
	"optStr": func(v *string) string {
		if v == nil || *v == "" {
			return "-"
		}
		return *v
	},
	"yesno": func(v bool) string {
		if v {
			return "yes"
		}
		return "no"
	},
}

var templates = template.Must(
	template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"),
)

// AnalysisData is the model for the keeper analysis page.
type AnalysisData struct {
	Title    string
	Players  []league.KeeperRecord
	Managers []string
	Selected string
}

// ErrorData is the model for the error page.
type ErrorData struct {
	Title   string
	Message string
}

// RenderAnalysis writes the keeper analysis page.
func RenderAnalysis(w io.Writer, data AnalysisData) error {
	if data.Title == "" {
		data.Title = "Keeper Analysis"
	}
	return templates.ExecuteTemplate(w, "analysis.html", data)
}

// RenderError writes the HTML error page. The caller sets the status
// code before rendering.
func RenderError(w io.Writer, message string) error {
	return templates.ExecuteTemplate(w, "error.html", ErrorData{
		Title:   "Error",
		Message: message,
	})
}
