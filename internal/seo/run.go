package seo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/proteinmuffins/muffins/internal/storage"
)

// FileResult is the outcome for one file of a Run.
type FileResult struct {
	Filename string
	Outcome  Outcome
	Err      error
}

// DefaultRecipeFiles are the recipe pages the site ships with.
var DefaultRecipeFiles = []string{
	"high-protein-muffins.html",
	"protein-muffins-recipe.html",
	"protein-pumpkin-muffins.html",
	"protein-blueberry-muffins.html",
	"chocolate-protein-muffins.html",
	"healthy-protein-muffins.html",
	"double-chocolate-protein-muffins.html",
	"chocolate-chip-protein-muffins.html",
	"protein-powder-muffins.html",
	"high-protein-muffins-without-protein-powder.html",
	"high-protein-muffins-with-greek-yogurt.html",
	"cottage-cheese-protein-muffins.html",
	"gluten-free-protein-muffins.html",
	"vegan-protein-muffins.html",
	"protein-breakfast-muffins.html",
	"protein-muffins-for-kids.html",
	"protein-mini-muffins.html",
	"protein-pancake-muffins.html",
	"zucchini-protein-muffins.html",
	"banana-chocolate-chip-protein-muffins.html",
	"banana-nut-protein-muffins.html",
	"apple-protein-muffins.html",
	"lemon-blueberry-protein-muffins.html",
	"protein-carrot-cake-muffins.html",
}

// Run injects SEO tags into each file in store. Missing files and pages
// without a meta description are skipped with a warning; processing always
// continues with the next file.
func Run(ctx context.Context, store storage.Store, files []string) []FileResult {
	results := make([]FileResult, 0, len(files))
	for _, name := range files {
		res := processFile(ctx, store, name)
		switch {
		case res.Err != nil:
			slog.Error("Failed to update page", "file", name, "error", res.Err)
		case res.Outcome == Updated:
			slog.Info("Updated page", "file", name)
		case res.Outcome == SkippedHasCanonical:
			slog.Info("Skipped page", "file", name, "reason", res.Outcome.String())
		default:
			slog.Warn("Skipped page", "file", name, "reason", res.Outcome.String())
		}
		results = append(results, res)
	}
	return results
}

func processFile(ctx context.Context, store storage.Store, name string) FileResult {
	res := FileResult{Filename: name}

	exists, err := store.Exists(ctx, name)
	if err != nil {
		res.Err = err
		return res
	}
	if !exists {
		res.Outcome = SkippedMissing
		return res
	}

	f, err := store.Open(ctx, name)
	if err != nil {
		res.Err = err
		return res
	}
	page, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", name, err)
		return res
	}

	out, outcome, err := Inject(name, page)
	res.Outcome = outcome
	if err != nil || outcome != Updated {
		res.Err = err
		return res
	}

	if _, err := store.Save(ctx, name, bytes.NewReader(out)); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", name, err)
	}
	return res
}
