package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Values accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted --format values, text first.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// FormatUsage is the help text shared by every --format flag.
func FormatUsage(what string) string {
	return fmt.Sprintf("output format for %s: %s", what, strings.Join(Formats(), ", "))
}

// Formatter writes records or summaries in one output format.
type Formatter interface {
	Format(data any) error
}

// FormatterOptions contains configuration for formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// Compact drops indentation from JSON and YAML
	Compact bool
}

// NewFormatter creates a formatter for format, ignoring case. An empty
// format is text.
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	o := FormatterOptions{Writer: os.Stdout}
	if opts != nil {
		o = *opts
		if o.Writer == nil {
			o.Writer = os.Stdout
		}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONFormatter{opts: o}, nil
	case FormatYAML:
		return &YAMLFormatter{opts: o}, nil
	case FormatText, "":
		return &TextFormatter{opts: o}, nil
	default:
		return nil, fmt.Errorf("invalid argument %q for --format: use one of %s", format, strings.Join(Formats(), ", "))
	}
}

// IsText reports whether format selects the human-readable output.
func IsText(format string) bool {
	f := strings.ToLower(format)
	return f == FormatText || f == ""
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	opts FormatterOptions
}

// Format writes data as JSON
func (f *JSONFormatter) Format(data any) error {
	encoder := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	opts FormatterOptions
}

// Format writes data as one YAML document
func (f *YAMLFormatter) Format(data any) error {
	encoder := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent(2)
	}
	if err := encoder.Encode(data); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

// TextRenderer is implemented by values that know how to print
// themselves for a terminal.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// TextFormatter formats output as human-readable text
type TextFormatter struct {
	opts FormatterOptions
}

// Format writes data through its TextRenderer or String method. Plain
// strings are written as a line.
func (f *TextFormatter) Format(data any) error {
	switch v := data.(type) {
	case TextRenderer:
		return v.RenderText(f.opts.Writer)
	case string:
		_, err := fmt.Fprintln(f.opts.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.opts.Writer, v.String())
		return err
	default:
		return fmt.Errorf("text output is not available for %T; use --format json or yaml", data)
	}
}

var (
	_ Formatter = (*JSONFormatter)(nil)
	_ Formatter = (*YAMLFormatter)(nil)
	_ Formatter = (*TextFormatter)(nil)
)
