package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	notifyColor  = color.New(color.FgCyan)
	captureColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
)

// Colors the script output by line kind. Lines are expected to arrive whole,
// one per write, as written by the script host.
type colorWriter struct {
	w io.Writer
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		s := string(line)
		var err error
		if c := lineColor(s); c != nil {
			_, err = c.Fprint(cw.w, s)
		} else {
			_, err = io.WriteString(cw.w, s)
		}
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func lineColor(s string) *color.Color {
	switch {
	case strings.HasPrefix(s, "h "), strings.HasPrefix(s, "v "):
		return notifyColor
	case strings.HasPrefix(s, "capture"), strings.HasPrefix(s, "release"),
		strings.HasPrefix(s, "settimer"), strings.HasPrefix(s, "killtimer"):
		return captureColor
	case strings.HasPrefix(s, "error"):
		return errorColor
	case strings.HasPrefix(s, "nothandled"), strings.HasPrefix(s, "tooltip"):
		return faintColor
	}
	return nil
}
