// Package site writes the rendered pack pages to disk.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/pages"
	"github.com/proteinmuffins/muffins/internal/rendering"
	"github.com/proteinmuffins/muffins/internal/storage"
)

// FileError records a page that could not be generated.
type FileError struct {
	Filename string
	Err      error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Report summarises one generation run.
type Report struct {
	Written []string
	Skipped []string
	Failed  []FileError
}

// Err joins every per-file failure, or returns nil when all pages were written.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Options tune a Generator.
type Options struct {
	// SkipSuccessPages disables the per-pack download pages.
	SkipSuccessPages bool
}

// Generator renders a pack catalog and writes one file per page.
type Generator struct {
	store    storage.Store
	renderer rendering.Renderer
	opts     Options
}

// NewGenerator creates a Generator writing through store.
func NewGenerator(store storage.Store, renderer rendering.Renderer, opts Options) *Generator {
	return &Generator{store: store, renderer: renderer, opts: opts}
}

// Generate renders every config in order. A failing file is logged and
// recorded in the report; the remaining files are still generated. Only a
// cancelled context stops the run early.
func (g *Generator) Generate(ctx context.Context, catalog []packs.PageConfig) Report {
	var report Report
	for i, cfg := range catalog {
		if err := ctx.Err(); err != nil {
			report.Failed = append(report.Failed, FileError{Filename: cfg.Filename, Err: err})
			return report
		}
		if cfg.Filename == "" {
			label := skipLabel(i, cfg.PackName)
			slog.Warn("Skipping pack without a filename", "pack", label)
			report.Skipped = append(report.Skipped, label)
			continue
		}

		g.write(ctx, &report, cfg.Filename, pages.PackPage(cfg))
		if cfg.SuccessPage != "" && !g.opts.SkipSuccessPages {
			g.write(ctx, &report, cfg.SuccessPage, pages.SuccessPage(cfg))
		}
	}

	slog.Info("Site generation finished",
		"written", len(report.Written),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed))
	return report
}

// skipLabel names a pack by its catalog position, since it has no filename.
func skipLabel(i int, packName string) string {
	if packName == "" {
		return fmt.Sprintf("pack #%d", i+1)
	}
	return fmt.Sprintf("pack #%d (%s)", i+1, packName)
}

func (g *Generator) write(ctx context.Context, report *Report, filename string, page any) {
	body, err := g.renderer.RenderComponent(ctx, page)
	if err != nil {
		slog.Error("Failed to render page", "file", filename, "error", err)
		report.Failed = append(report.Failed, FileError{Filename: filename, Err: err})
		return
	}

	n, err := g.store.Save(ctx, filename, bytes.NewReader(body))
	if err != nil {
		slog.Error("Failed to write page", "file", filename, "error", err)
		report.Failed = append(report.Failed, FileError{Filename: filename, Err: fmt.Errorf("failed to write page: %w", err)})
		return
	}

	slog.Info("Generated page", "file", filename, "bytes", n)
	report.Written = append(report.Written, filename)
}
