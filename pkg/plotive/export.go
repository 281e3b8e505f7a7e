package plotive

import (
	"fmt"

	"github.com/plotive/plotive-go/pkg/plotive/data"
	"github.com/plotive/plotive-go/pkg/plotive/models"
)

// RasterRenderer rasterizes an extracted figure to a file.
type RasterRenderer interface {
	RenderRaster(fig *models.Figure, style models.Style, src data.Source, path string) error
}

// VectorRenderer writes an extracted figure as a vector file.
type VectorRenderer interface {
	RenderVector(fig *models.Figure, style models.Style, src data.Source, path string) error
}

// InteractiveViewer displays an extracted figure for an indefinite
// lifetime. The source it receives is an owned snapshot.
type InteractiveViewer interface {
	Show(fig *models.Figure, style models.Style, src *data.MemorySource) error
}

// SaveRaster renders a figure to a raster file. A nil style means the
// default light style.
func SaveRaster(r RasterRenderer, fig *models.Figure, path string, src data.Source, style *models.Style) error {
	if err := r.RenderRaster(fig, styleOrDefault(style), src, path); err != nil {
		return fmt.Errorf("save raster %q: %w", path, err)
	}
	return nil
}

// SaveVector renders a figure to a vector file.
func SaveVector(r VectorRenderer, fig *models.Figure, path string, src data.Source, style *models.Style) error {
	if err := r.RenderVector(fig, styleOrDefault(style), src, path); err != nil {
		return fmt.Errorf("save vector %q: %w", path, err)
	}
	return nil
}

// ShowInteractive hands a figure to a viewer. The data source is
// snapshotted first so the viewer outlives the caller's buffers.
func ShowInteractive(viewer InteractiveViewer, fig *models.Figure, src data.Source, style *models.Style) error {
	owned, err := data.Snapshot(src)
	if err != nil {
		return fmt.Errorf("show interactive: %w", err)
	}
	if err := viewer.Show(fig, styleOrDefault(style), owned); err != nil {
		return fmt.Errorf("show interactive: %w", err)
	}
	return nil
}

func styleOrDefault(style *models.Style) models.Style {
	if style != nil {
		return *style
	}
	return models.DefaultStyle()
}
