package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/pages"
	"github.com/proteinmuffins/muffins/internal/rendering"
)

// PackHandler renders pack and success pages on request so catalog edits can
// be previewed without regenerating the site.
type PackHandler struct {
	catalog  []packs.PageConfig
	renderer rendering.Renderer
}

// NewPackHandler creates a new PackHandler over catalog.
func NewPackHandler(catalog []packs.PageConfig, renderer rendering.Renderer) *PackHandler {
	return &PackHandler{catalog: catalog, renderer: renderer}
}

// Preview handles GET /packs/:filename.
func (h *PackHandler) Preview(c echo.Context) error {
	name := c.Param("filename")
	for _, cfg := range h.catalog {
		switch name {
		case cfg.Filename:
			return h.renderer.RenderPage(c, http.StatusOK, pages.PackPage(cfg))
		case cfg.SuccessPage:
			if cfg.SuccessPage != "" {
				return h.renderer.RenderPage(c, http.StatusOK, pages.SuccessPage(cfg))
			}
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Pack not found")
}

// PackSummary is the JSON listing entry for one pack.
type PackSummary struct {
	Filename    string `json:"filename"`
	PackName    string `json:"packName"`
	SuccessPage string `json:"successPage,omitempty"`
	Recipes     int    `json:"recipes"`
}

// List handles GET /packs.
func (h *PackHandler) List(c echo.Context) error {
	out := make([]PackSummary, 0, len(h.catalog))
	for _, cfg := range h.catalog {
		out = append(out, PackSummary{
			Filename:    cfg.Filename,
			PackName:    cfg.PackName,
			SuccessPage: cfg.SuccessPage,
			Recipes:     len(cfg.Recipes),
		})
	}
	return c.JSON(http.StatusOK, out)
}
