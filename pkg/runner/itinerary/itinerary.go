// Package itinerary renders a trip to a printable PDF file.
package itinerary

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/pdf"
	"tableflip.dev/wendy/pkg/printers"
)

type PDF struct {
	printers.Output
	Service *app.Service
	TripID  string
	// Path is the destination file; empty uses the suggested file name.
	Path string
	// ShareBase, when set, adds the share link and its QR code.
	ShareBase string
}

func (n *PDF) Do(ctx context.Context) error {
	t, err := n.Service.Trip(ctx, n.TripID)
	if err != nil {
		return err
	}
	opts := pdf.Options{Currency: n.Currency}
	if n.ShareBase != "" {
		opts.ShareURL = app.ShareLink(n.ShareBase, t.ID)
	}

	if n.Path == "-" {
		return pdf.Render(n.Writer(), t, opts)
	}
	name := n.Path
	if name == "" {
		name = pdf.FileName(t)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := pdf.Render(f, t, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return n.Print(map[string]string{"file": name}, func(pp *printers.PrettyPrint) {
		_, _ = fmt.Fprintf(n.Writer(), "wrote %s\n", name)
	})
}
