package plotive

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plotive/plotive-go/pkg/plotive/data"
)

func figureDescription() map[string]any {
	return map[string]any{
		"plots": []any{
			map[string]any{
				"series": []any{
					map[string]any{"type": "Line", "x": "time", "y": "price"},
					map[string]any{"type": "Line", "x": "time", "y": []any{1, 2}},
				},
			},
			map[string]any{
				"series": []any{
					map[string]any{"type": "Line", "x": "time", "y": "volume"},
				},
			},
		},
	}
}

func TestExtractFigure(t *testing.T) {
	fig, err := ExtractFigure(figureDescription())
	if err != nil {
		t.Fatalf("ExtractFigure failed: %v", err)
	}
	if fig == nil {
		t.Fatal("ExtractFigure returned nil figure")
	}

	_, err = ExtractFigure("nonsense")
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Errorf("bad figure: expected TypeError, got %v", err)
	}
}

func TestSourceColumns(t *testing.T) {
	fig, err := ExtractFigure(figureDescription())
	if err != nil {
		t.Fatalf("ExtractFigure failed: %v", err)
	}
	// First-reference order, duplicates dropped, inline values skipped.
	want := []string{"time", "price", "volume"}
	if diff := cmp.Diff(want, SourceColumns(fig)); diff != "" {
		t.Errorf("source columns mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractDataSource(t *testing.T) {
	src, err := ExtractDataSource(nil)
	if err != nil {
		t.Fatalf("ExtractDataSource(nil) failed: %v", err)
	}
	if len(src.Names()) != 0 {
		t.Errorf("nil source names = %v", src.Names())
	}

	src, err = ExtractDataSource(map[string][]float64{"v": {1, 2}})
	if err != nil {
		t.Fatalf("ExtractDataSource(map) failed: %v", err)
	}
	if src.Column("v") == nil {
		t.Error("float map column missing")
	}

	src, err = ExtractDataSource(map[string]any{"v": []any{1, 2.5}})
	if err != nil {
		t.Fatalf("ExtractDataSource(loose map) failed: %v", err)
	}
	if src.Column("v") == nil || src.Column("v").Len() != 2 {
		t.Error("loose map column missing")
	}

	// Mapping columns keep their typed-buffer recognition: integer
	// buffers retain the int64 view, single-precision buffers are
	// accepted as-is.
	src, err = ExtractDataSource(map[string]any{"i": []int64{1, 2}})
	if err != nil {
		t.Fatalf("ExtractDataSource(int map) failed: %v", err)
	}
	if _, ok := src.Column("i").Int64s(); !ok {
		t.Error("int64 mapping column lost the i64 capability")
	}
	src, err = ExtractDataSource(map[string]any{"f": []float32{1, 2}})
	if err != nil {
		t.Fatalf("ExtractDataSource(float32 map) failed: %v", err)
	}
	if src.Column("f") == nil || src.Column("f").Len() != 2 {
		t.Error("float32 mapping column missing")
	}

	existing := data.FromMap(map[string][]float64{"v": {1}})
	src, err = ExtractDataSource(existing)
	if err != nil {
		t.Fatalf("ExtractDataSource(source) failed: %v", err)
	}
	if src != data.Source(existing) {
		t.Error("existing source should pass through")
	}

	var terr *TypeError
	_, err = ExtractDataSource("columns.csv")
	if !errors.As(err, &terr) {
		t.Errorf("string source: expected TypeError, got %v", err)
	}
	_, err = ExtractDataSource(map[string]any{"v": []any{"a"}})
	if !errors.As(err, &terr) {
		t.Errorf("text column: expected TypeError, got %v", err)
	}
}
