// Package transfers runs the JSON export and import commands.
package transfers

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/transfer"
)

// Stdio is the path that stands for stdin or stdout.
const Stdio = "-"

// Export writes a trip, one of its days or every trip as JSON.
type Export struct {
	printers.Output
	Service  *app.Service
	TripID   string
	DayIndex int
	All      bool
	// Path is the destination file; empty uses the suggested file name.
	Path string
}

func (n *Export) Do(ctx context.Context) error {
	var (
		name  string
		write func(io.Writer) error
	)
	switch {
	case n.All:
		all, err := n.Service.List(ctx)
		if err != nil {
			return err
		}
		name = transfer.BackupFileName
		write = func(w io.Writer) error { return transfer.ExportAll(w, all) }
	default:
		t, err := n.Service.Trip(ctx, n.TripID)
		if err != nil {
			return err
		}
		name = transfer.TripFileName(t.ID)
		write = func(w io.Writer) error { return transfer.ExportTrip(w, t) }
		if n.DayIndex != 0 {
			d, ok := t.Day(n.DayIndex)
			if !ok {
				return fmt.Errorf("%w: %d", app.ErrDayNotFound, n.DayIndex)
			}
			name = transfer.DayFileName(t.ID, d.DayIndex)
			write = func(w io.Writer) error { return transfer.ExportDay(w, d) }
		}
	}

	if n.Path == Stdio {
		return write(n.Writer())
	}
	if n.Path != "" {
		name = n.Path
	}
	if err := writeFile(name, write); err != nil {
		return err
	}
	return n.Print(map[string]string{"file": name}, func(pp *printers.PrettyPrint) {
		_, _ = fmt.Fprintf(n.Writer(), "exported to %s\n", name)
	})
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Import stores the trip read from Path as a new trip.
type Import struct {
	printers.Output
	Service *app.Service
	Path    string
	// In is read when Path is Stdio.
	In io.Reader
}

func (n *Import) Do(ctx context.Context) error {
	r := n.In
	if n.Path != Stdio {
		f, err := os.Open(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}
	t, err := n.Service.Import(ctx, r)
	if err != nil {
		return err
	}
	return n.Print(t, func(pp *printers.PrettyPrint) {
		pp.ShowID = true
		pp.Trip(t)
	})
}
