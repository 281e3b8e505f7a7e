package plotive

import (
	"errors"
	"strings"
	"testing"

	"github.com/plotive/plotive-go/pkg/plotive/data"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

type fakeBackend struct {
	path  string
	style models.Style
	src   data.Source
	owned *data.MemorySource
	err   error
}

func (b *fakeBackend) RenderRaster(fig *models.Figure, style models.Style, src data.Source, path string) error {
	b.path, b.style, b.src = path, style, src
	return b.err
}

func (b *fakeBackend) RenderVector(fig *models.Figure, style models.Style, src data.Source, path string) error {
	b.path, b.style, b.src = path, style, src
	return b.err
}

func (b *fakeBackend) Show(fig *models.Figure, style models.Style, src *data.MemorySource) error {
	b.style, b.owned = style, src
	return b.err
}

func testFigure(t *testing.T) *models.Figure {
	t.Helper()
	fig, err := ExtractFigure(map[string]any{
		"plot": map[string]any{
			"series": []any{map[string]any{"type": "Line", "x": "t", "y": "v"}},
		},
	})
	if err != nil {
		t.Fatalf("ExtractFigure failed: %v", err)
	}
	return fig
}

func TestSaveRaster(t *testing.T) {
	backend := &fakeBackend{}
	fig := testFigure(t)
	src := data.FromMap(map[string][]float64{"t": {1}, "v": {2}})

	if err := SaveRaster(backend, fig, "out.png", src, nil); err != nil {
		t.Fatalf("SaveRaster failed: %v", err)
	}
	if backend.path != "out.png" {
		t.Errorf("renderer path = %q", backend.path)
	}
	if backend.style != models.DefaultStyle() {
		t.Errorf("nil style should default: got %+v", backend.style)
	}
	if backend.src != data.Source(src) {
		t.Error("save should hand the source through unsnapshotted")
	}

	// Renderer failures come back wrapped with the path.
	backend.err = errors.New("disk full")
	err := SaveRaster(backend, fig, "out.png", src, nil)
	if err == nil || !errors.Is(err, backend.err) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
	if !strings.Contains(err.Error(), "out.png") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestSaveVectorStyleOverride(t *testing.T) {
	backend := &fakeBackend{}
	style := models.DarkStyle()
	if err := SaveVector(backend, testFigure(t), "out.svg", data.Empty(), &style); err != nil {
		t.Fatalf("SaveVector failed: %v", err)
	}
	if backend.style != style {
		t.Errorf("renderer style = %+v, expected dark", backend.style)
	}
}

func TestShowInteractiveSnapshots(t *testing.T) {
	backend := &fakeBackend{}
	backing := []float64{1, 2}
	src := data.FromMap(map[string][]float64{"v": backing})

	if err := ShowInteractive(backend, testFigure(t), src, nil); err != nil {
		t.Fatalf("ShowInteractive failed: %v", err)
	}
	if backend.owned == nil {
		t.Fatal("viewer received no source")
	}

	// The viewer holds an owned snapshot, not the caller's buffers.
	backing[0] = 99
	seq, ok := backend.owned.Column("v").Float64s()
	if !ok {
		t.Fatal("snapshot column has no float64 view")
	}
	for f, present := range seq {
		if present && f == 99 {
			t.Error("viewer saw a mutation of the caller's buffer")
		}
		break
	}

	backend.err = errors.New("display gone")
	if err := ShowInteractive(backend, testFigure(t), src, nil); !errors.Is(err, backend.err) {
		t.Errorf("expected wrapped viewer error, got %v", err)
	}
}
