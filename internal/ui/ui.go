package ui

import (
	"fmt"
	"io"
)

type Color string

const (
	ColorDefault Color = "\033[0m"
	ColorGray    Color = "\033[38;2;150;150;150m"
	ColorRed     Color = "\033[38;2;255;100;100m"
	ColorGreen   Color = "\033[38;2;100;220;100m"
	ColorYellow  Color = "\033[38;2;230;200;80m"
	ColorBlue    Color = "\033[38;2;130;170;255m"
)

// UI wraps an output writer with optional ANSI coloring.
type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

func (u *UI) Writer() io.Writer {
	return u.writer
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

// Error prints a dismissible inline error line.
func (u *UI) Error(message string) {
	fmt.Fprintln(u.writer, u.colorize(message, ColorRed))
}

func (u *UI) Success(message string) {
	fmt.Fprintln(u.writer, u.colorize(message, ColorGreen))
}

func (u *UI) Info(message string) {
	fmt.Fprintln(u.writer, u.colorize(message, ColorGray))
}
