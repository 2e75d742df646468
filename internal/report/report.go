// Package report renders progress reports as markdown and PDF.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/at-ishikawa/kioku/internal/statistics"
	"github.com/at-ishikawa/kioku/internal/study"
)

const embeddedTemplateName = "progress-report.md.go.tmpl"

//go:embed templates/progress-report.md.go.tmpl
var fallbackReportTemplate string

// Data is the input of the report template.
type Data struct {
	Title       string
	GeneratedAt time.Time
	Overview    study.Overview
	Activity    statistics.ActivityReport
}

// NewData builds report data from an overview and the review history.
func NewData(overview study.Overview, activity statistics.ActivityReport, loc *time.Location) Data {
	title := "Study progress"
	if overview.SubjectID != "" {
		title = fmt.Sprintf("Study progress: %s", overview.SubjectID)
	}
	generatedAt := overview.GeneratedAt
	if loc != nil {
		generatedAt = generatedAt.In(loc)
	}
	return Data{
		Title:       title,
		GeneratedAt: generatedAt,
		Overview:    overview,
		Activity:    activity,
	}
}

// Write renders data with the template at templatePath, or with the embedded
// template when templatePath is empty or cannot be parsed.
func Write(output io.Writer, templatePath string, data Data) error {
	tmpl, err := parseTemplateWithFallback(templatePath)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// WriteFile renders the report into dir and returns the markdown path.
// The file is named after the report date, so a second run on the same day replaces it.
func WriteFile(dir, templatePath string, data Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	name := "progress-" + data.GeneratedAt.Format(time.DateOnly)
	if data.Overview.SubjectID != "" {
		name += "-" + data.Overview.SubjectID
	}
	path := filepath.Join(dir, name+".md")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := Write(f, templatePath, data); err != nil {
		return "", err
	}
	return path, nil
}

func parseTemplateWithFallback(templatePath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"date": formatDate,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a report template",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(embeddedTemplateName).
		Funcs(funcMap).
		Parse(fallbackReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// formatDate accepts both time.Time and *time.Time so templates can pass optional dates.
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.DateOnly)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	}
	return fmt.Sprint(v)
}
