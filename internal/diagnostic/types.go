package diagnostic

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos locates the diagnostic in its source document.
	Pos Position
}

// Position is a location in a source document. Zero fields are unknown.
type Position struct {
	File     string
	Document int
	Line     int
	Column   int
}

// String renders the position as file:line:col, omitting unknown parts.
func (p Position) String() string {
	var parts []string
	if p.File != "" {
		parts = append(parts, p.File)
	}

	if p.Line > 0 {
		parts = append(parts, fmt.Sprint(p.Line))
		if p.Column > 0 {
			parts = append(parts, fmt.Sprint(p.Column))
		}
	}

	return strings.Join(parts, ":")
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

func (s DiagnosticSeverity) color() *color.Color {
	switch s {
	case DiagnosticError:
		return color.New(color.FgRed, color.Bold)
	case DiagnosticWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func (d *Diagnostics) add(s DiagnosticSeverity, code, message string, pos Position) {
	diag := Diagnostic{Severity: s, Code: code, Message: message, Pos: pos}

	switch s {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, pos Position) {
	d.add(DiagnosticError, code, message, pos)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, pos Position) {
	d.add(DiagnosticWarning, code, message, pos)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, pos Position) {
	d.add(DiagnosticInfo, code, message, pos)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Print writes one line per diagnostic with the severity in colour.
// Colour is dropped automatically when w is not a terminal.
func (d *Diagnostics) Print(w io.Writer) error {
	for _, diag := range d.All() {
		sev := diag.Severity.color().Sprint(diag.Severity)
		if _, err := fmt.Fprintf(w, "%s: %s\n", sev, diag.String()); err != nil {
			return err
		}
	}

	return nil
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if pos := d.Pos.String(); pos != "" {
		return pos + ": " + msg
	}

	return msg
}
