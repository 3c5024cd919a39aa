package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func result(path string, width float64, at time.Time) *inspect.Result {
	return &inspect.Result{
		Path: path,
		Size: 134,
		Summary: analysis.Summary{
			Format:      "binary-stl",
			VertexCount: 3,
			Min:         geometry.NewVector3(0, 0, 0),
			Max:         geometry.NewVector3(width, 2, 3),
			Average:     geometry.NewVector3(width/2, 1, 1.5),
			Width:       width,
			Depth:       2,
			Height:      3,
		},
		InspectedAt: at,
	}
}

func TestSaveAndHistory(t *testing.T) {
	t.Parallel()

	c := openTestCatalog(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, width := range []float64{1, 2, 3} {
		if _, err := c.Save(ctx, result("part.stl", width, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	if _, err := c.Save(ctx, result("other.stl", 9, base)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	records, err := c.History(ctx, "part.stl", 0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Width != 3 || records[2].Width != 1 {
		t.Errorf("expected newest first, got widths %v %v %v", records[0].Width, records[1].Width, records[2].Width)
	}

	got := records[0]
	if got.Format != "binary-stl" || got.Vertices != 3 || got.Size != 134 {
		t.Errorf("unexpected record %+v", got)
	}
	if got.Max != geometry.NewVector3(3, 2, 3) || got.Average != geometry.NewVector3(1.5, 1, 1.5) {
		t.Errorf("vectors not round-tripped: %+v", got)
	}
	if !got.InspectedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected timestamp %v, got %v", base.Add(2*time.Minute), got.InspectedAt)
	}
	if !filepath.IsAbs(got.Path) {
		t.Errorf("expected absolute path, got %q", got.Path)
	}

	limited, err := c.History(ctx, "part.stl", 1)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 record with limit, got %d", len(limited))
	}
}

func TestSaveFailedResult(t *testing.T) {
	t.Parallel()

	c := openTestCatalog(t)
	r := &inspect.Result{Path: "bad.obj", Err: errors.New("parse failed")}

	if _, err := c.Save(context.Background(), r); !errors.Is(err, ErrNotParsed) {
		t.Errorf("expected ErrNotParsed, got %v", err)
	}
}

func TestHistoryUnknownPath(t *testing.T) {
	t.Parallel()

	c := openTestCatalog(t)
	records, err := c.History(context.Background(), "never-seen.obj", 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
