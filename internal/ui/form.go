package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FieldType selects the input widget a field renders as. Dispatch is an
// exhaustive switch so a new type fails loudly instead of silently falling
// through to a text input.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEmail
	FieldPassword
	FieldNumber
	FieldSelect
	FieldBoolean
	FieldTextarea
	FieldDate
	FieldDateTime
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field is one entry of a declarative form definition.
type Field struct {
	Key         string
	Label       string
	Type        FieldType
	Required    bool
	Options     []Option
	Placeholder string
	Disabled    bool
}

// Values maps field keys to their current values.
type Values map[string]any

// Validate reports the first required field that is empty. Save handlers
// call this before submitting; the dialog itself never blocks a save.
func Validate(fields []Field, values Values) error {
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if isEmpty(values[field.Key]) {
			return fmt.Errorf("campo obligatorio: %s", field.Label)
		}
	}
	return nil
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// CoerceNumber converts numeric field input, defaulting to zero on
// non-numeric text.
func CoerceNumber(input string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseValue converts raw line input into the field's value type.
func ParseValue(field Field, input string) any {
	switch field.Type {
	case FieldNumber:
		return CoerceNumber(input)
	case FieldBoolean:
		return parseBool(input)
	case FieldSelect, FieldText, FieldEmail, FieldPassword,
		FieldTextarea, FieldDate, FieldDateTime:
		return input
	default:
		return input
	}
}

func parseBool(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "s", "si", "sí", "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}

// LineReader supplies user input to the dialog. The console adapts its
// readline instance to this; tests supply scripted input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Dialog renders a modal create/edit form from a field list. It holds no
// submission state of its own: every change, close and save is reported
// through the callbacks, and the caller-supplied Loading flag only
// disables input and switches the save label.
type Dialog struct {
	Title    string
	Fields   []Field
	Values   Values
	OnChange func(key string, value any)
	OnClose  func()
	OnSave   func() error
	Loading  bool
	Error    string
}

// Run walks the fields collecting edits, then offers save or cancel.
// Empty input keeps a field's current value.
func (d *Dialog) Run(in LineReader, out io.Writer) error {
	fmt.Fprintf(out, "--- %s ---\n", d.Title)
	if d.Error != "" {
		fmt.Fprintf(out, "Error: %s\n", d.Error)
	}

	for _, field := range d.Fields {
		if field.Disabled || d.Loading {
			fmt.Fprintf(out, "%s: %s\n", field.Label, Stringify(d.Values[field.Key]))
			continue
		}

		d.renderField(out, field)

		input, err := in.ReadLine("> ")
		if err != nil {
			d.close()
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		value := ParseValue(field, input)
		d.Values[field.Key] = value
		if d.OnChange != nil {
			d.OnChange(field.Key, value)
		}
	}

	saveLabel := "Guardar"
	if d.Loading {
		saveLabel = "Guardando..."
	}
	answer, err := in.ReadLine(fmt.Sprintf("¿%s? (s/N): ", saveLabel))
	if err != nil {
		d.close()
		return err
	}
	if parseBool(answer) && !d.Loading && d.OnSave != nil {
		err := d.OnSave()
		d.close()
		return err
	}

	d.close()
	return nil
}

func (d *Dialog) close() {
	if d.OnClose != nil {
		d.OnClose()
	}
}

// renderField prints the prompt for one field, tagged by widget type.
func (d *Dialog) renderField(out io.Writer, field Field) {
	label := field.Label
	if field.Required {
		label += " *"
	}
	current := Stringify(d.Values[field.Key])

	switch field.Type {
	case FieldSelect:
		fmt.Fprintf(out, "%s [%s]\n", label, current)
		for _, opt := range field.Options {
			fmt.Fprintf(out, "  %s - %s\n", opt.Value, opt.Label)
		}
	case FieldBoolean:
		fmt.Fprintf(out, "%s (s/n) [%s]\n", label, current)
	case FieldTextarea:
		fmt.Fprintf(out, "%s (texto libre) [%s]\n", label, current)
	case FieldDate:
		// Date fields always show their label and format, even empty.
		fmt.Fprintf(out, "%s (AAAA-MM-DD) [%s]\n", label, current)
	case FieldDateTime:
		fmt.Fprintf(out, "%s (AAAA-MM-DDTHH:MM) [%s]\n", label, current)
	case FieldPassword:
		fmt.Fprintf(out, "%s\n", label)
	case FieldNumber:
		fmt.Fprintf(out, "%s (número) [%s]\n", label, current)
	case FieldText, FieldEmail:
		if field.Placeholder != "" && current == "" {
			fmt.Fprintf(out, "%s (%s)\n", label, field.Placeholder)
		} else {
			fmt.Fprintf(out, "%s [%s]\n", label, current)
		}
	}
}
