package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Output selects how a runner shows its result.
type Output struct {
	ShowID   bool
	Currency string
	JSON     bool
	W        io.Writer
}

// Writer is where results go, color.Output when unset.
func (o Output) Writer() io.Writer {
	if o.W != nil {
		return o.W
	}
	return color.Output
}

// Pretty returns a printer writing to Writer.
func (o Output) Pretty() *PrettyPrint {
	return &PrettyPrint{ShowID: o.ShowID, Currency: o.Currency, Out: o.Writer()}
}

// Print writes v as indented JSON in JSON mode and calls pretty otherwise.
func (o Output) Print(v any, pretty func(pp *PrettyPrint)) error {
	if o.JSON {
		return JSON(o.Writer(), v)
	}
	pretty(o.Pretty())
	return nil
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
