package control

import (
	"context"
	"errors"
	"slices"

	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/parser"
)

// PathDrift lists the differences between a category's configured paths and the
// paths its relayer knows about.
type PathDrift struct {
	Category string
	// Missing paths are configured but unknown to the relayer.
	Missing []string
	// Unconfigured paths are known to the relayer but not checked.
	Unconfigured []string
}

// InSync reports whether configuration and relayer agree.
func (d PathDrift) InSync() bool {
	return len(d.Missing) == 0 && len(d.Unconfigured) == 0
}

// Discover runs `paths list` on every selected category's relayer and compares the
// result with the configured paths. Categories whose relayer returned nothing are left out.
func (w *Walker) Discover(ctx context.Context, selected []string) ([]PathDrift, error) {
	categories, errs := w.selectCategories(selected)

	var drifts []PathDrift
	for _, category := range categories {
		if err := validate(category); err != nil {
			w.logger.Error("Skipping category", "category", category.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		if err := ctx.Err(); err != nil {
			return drifts, errors.Join(append(errs, err)...)
		}

		out, ok := w.query(ctx, category, "paths", "list")
		if !ok {
			continue
		}

		drift := comparePaths(category, parser.ParsePathList(out))
		for _, key := range drift.Missing {
			w.logger.Warn("Configured path not found on relayer", "category", category.Name, "path", key)
		}
		for _, key := range drift.Unconfigured {
			w.logger.Info("Relayer path is not configured", "category", category.Name, "path", key)
		}
		drifts = append(drifts, drift)
	}

	return drifts, errors.Join(errs...)
}

func comparePaths(category domain.Category, known []string) PathDrift {
	drift := PathDrift{Category: category.Name}

	configured := make([]string, 0, len(category.Paths))
	for _, p := range category.Paths {
		configured = append(configured, p.Key)
		if !slices.Contains(known, p.Key) {
			drift.Missing = append(drift.Missing, p.Key)
		}
	}
	for _, key := range known {
		if !slices.Contains(configured, key) {
			drift.Unconfigured = append(drift.Unconfigured, key)
		}
	}
	return drift
}
