// Package templates holds the starter artifacts written by jeff init.
package templates

import (
	"bytes"
	"embed"
	"io/fs"
	"sort"
	"text/template"
	"time"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

//go:embed files/*
var files embed.FS

// DateLayout is the format of the creation date substituted into templates.
const DateLayout = "2006-01-02"

// Data is substituted into every template.
type Data struct {
	ProjectName string
	Created     string
}

// NewData builds template data for a project created at now.
func NewData(projectName string, now time.Time) Data {
	return Data{
		ProjectName: projectName,
		Created:     now.Format(DateLayout),
	}
}

// Names returns the embedded template file names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(files, "files")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Render executes the named template with data.
func Render(name string, data Data) (string, error) {
	raw, err := files.ReadFile("files/" + name)
	if err != nil {
		return "", errors.NewTemplateNotFoundError("template", name)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeTemplateNotFound, "invalid template "+name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(errors.ErrCodeTemplateNotFound, "render template "+name, err)
	}
	return buf.String(), nil
}
