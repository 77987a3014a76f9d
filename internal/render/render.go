// Package render writes a generated week to the console or as Markdown and HTML documents.
package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/workout"
	"github.com/yuin/goldmark"
)

// Separator precedes every day in the text output.
const Separator = "-----------------------------------"

// ErrUnknownFormat is returned by [ByName] for formats other than text, markdown and html.
var ErrUnknownFormat = errors.NewSentinel("unknown output format")

// Func writes week to w.
type Func func(w io.Writer, week workout.Week) error

// ByName returns the renderer for "text", "markdown" or "html".
func ByName(format string) (Func, error) {
	switch format {
	case "text", "":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "html":
		return HTML, nil
	default:
		return nil, errors.Wrap(ErrUnknownFormat, "select renderer", slog.String("format", format))
	}
}

// Text writes the console format: a separator and "Weekday:" header per day followed by
// one "<exercise>: <minutes> min" line per exercise.
func Text(w io.Writer, week workout.Week) error {
	bw := bufio.NewWriter(w)
	for _, day := range week.Days {
		_, _ = fmt.Fprintln(bw, Separator)
		_, _ = fmt.Fprintf(bw, "%s:\n", day.Weekday)
		for _, e := range day.Routine.Entries() {
			_, _ = fmt.Fprintf(bw, "%s: %d min\n", e.Name, e.Minutes)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write text routine")
	}
	return nil
}

// Markdown writes one section per day with a bullet list of exercises and the day's total.
func Markdown(w io.Writer, week workout.Week) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "# %s routine, %d minutes per session\n", week.Level, week.MinutesPerSession)
	for _, day := range week.Days {
		_, _ = fmt.Fprintf(bw, "\n## %s\n\n", day.Weekday)
		if day.Routine.Len() == 0 {
			_, _ = fmt.Fprintln(bw, "_No exercises fit this session._")
			continue
		}
		for _, e := range day.Routine.Entries() {
			_, _ = fmt.Fprintf(bw, "- %s: %d min\n", e.Name, e.Minutes)
		}
		_, _ = fmt.Fprintf(bw, "\n**Total: %d min**\n", day.Routine.Total())
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write markdown routine")
	}
	return nil
}

// HTML converts the [Markdown] output to HTML.
func HTML(w io.Writer, week workout.Week) error {
	var md bytes.Buffer
	if err := Markdown(&md, week); err != nil {
		return err
	}
	if err := goldmark.Convert(md.Bytes(), w); err != nil {
		return errors.Wrap(err, "convert markdown to html")
	}
	return nil
}
