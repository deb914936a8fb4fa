// Package report prints which activities of a trip were carried out.
package report

import (
	"context"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
)

type Report struct {
	printers.Output
	Service *app.Service
	TripID  string
}

func (n *Report) Do(ctx context.Context) error {
	result, err := n.Service.Report(ctx, n.TripID)
	if err != nil {
		return err
	}
	return n.Print(result, func(pp *printers.PrettyPrint) {
		pp.Report(result)
	})
}
