package transfers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/store"
	"tableflip.dev/wendy/pkg/transfer"
)

func TestExportImportFile(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory(nil))
	src, err := svc.CreateTrip(ctx, app.NewTrip{Title: "Rome", Template: app.CityBreak3})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), transfer.TripFileName(src.ID))
	var buf bytes.Buffer
	e := Export{Output: printers.Output{W: &buf}, Service: svc, TripID: src.ID, Path: path}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	i := Import{Output: printers.Output{W: &buf, JSON: true}, Service: svc, Path: path}
	if err := i.Do(ctx); err != nil {
		t.Fatalf("Import: %v", err)
	}
	all, _ := svc.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected the original and the import, got %d", len(all))
	}
	if all[0].ID == src.ID || all[0].Title != "Rome" || len(all[0].Days) != 3 {
		t.Errorf("unexpected import %+v", all[0])
	}
}

func TestExportDayToStdout(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory(nil))
	src, _ := svc.CreateTrip(ctx, app.NewTrip{Title: "Rome", Template: app.Weekend2})

	var buf bytes.Buffer
	e := Export{Output: printers.Output{W: &buf}, Service: svc, TripID: src.ID, DayIndex: 2, Path: Stdio}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), `"dayIndex": 2`) || !strings.Contains(buf.String(), "Colazione") {
		t.Errorf("unexpected export:\n%s", buf.String())
	}

	e.DayIndex = 9
	if err := e.Do(ctx); err == nil {
		t.Errorf("expected an error for a missing day")
	}
}

func TestImportStdin(t *testing.T) {
	svc := app.New(store.NewMemory(nil))
	i := Import{Output: printers.Output{W: &bytes.Buffer{}}, Service: svc, Path: Stdio, In: strings.NewReader(`{"title":"Oslo","days":[{}]}`)}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("Import: %v", err)
	}
	all, _ := svc.List(context.Background())
	if len(all) != 1 || all[0].Title != "Oslo" {
		t.Fatalf("unexpected trips %+v", all)
	}
}
