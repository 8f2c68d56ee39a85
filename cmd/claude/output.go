package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	// Packages
	schema "github.com/mutablelogic/go-claude/pkg/schema"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Output writes responses and errors as JSON, indented on a terminal
type Output struct {
	w      io.Writer
	indent bool
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewOutput(w io.Writer) *Output {
	output := &Output{w: w}
	if f, ok := w.(*os.File); ok {
		output.indent = term.IsTerminal(int(f.Fd()))
	}
	return output
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Value writes a response verbatim
func (o *Output) Value(v schema.Value) error {
	if o.indent {
		_, err := fmt.Fprintln(o.w, v.Indent())
		return err
	}
	_, err := fmt.Fprintln(o.w, v.String())
	return err
}

// JSON writes any value as JSON
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	if o.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// Error writes an error as {"error": "..."}
func (o *Output) Error(err error) {
	if err := o.JSON(map[string]string{"error": err.Error()}); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
