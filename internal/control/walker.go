package control

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/evaluate"
	"github.com/vietddude/relaywatch/internal/parser"
)

// Walker runs the configured checks sequentially, one command at a time, and reports
// every classified observation to its sink.
type Walker struct {
	cfg    Config
	runner Runner
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

// NewWalker creates a new Walker.
func NewWalker(cfg Config, runner Runner, sink Sink, logger *slog.Logger) *Walker {
	if cfg.RelayerBinary == "" {
		cfg.RelayerBinary = "rly"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{
		cfg:    cfg,
		runner: runner,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Run checks every selected category for each requested kind. An empty selection means
// all configured categories. Configuration failures are logged as they are found and
// only skip the affected category; they are returned joined once the walk is done.
func (w *Walker) Run(ctx context.Context, kinds []domain.CheckKind, selected []string) error {
	categories, errs := w.selectCategories(selected)

	for _, category := range categories {
		if err := validate(category); err != nil {
			w.logger.Error("Skipping category", "category", category.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		for _, kind := range domain.AllCheckKinds {
			if !slices.Contains(kinds, kind) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return errors.Join(append(errs, err)...)
			}
			w.Check(ctx, category, kind)
		}
	}

	return errors.Join(errs...)
}

// Check runs one kind of check over a category.
func (w *Walker) Check(ctx context.Context, category domain.Category, kind domain.CheckKind) {
	w.logger.Debug("Checking category paths", "check", kind.String(), "category", category.Name)

	switch kind {
	case domain.CheckExpiration:
		for _, path := range category.Paths {
			w.checkExpiration(ctx, category, path)
		}
	case domain.CheckUnrelayed:
		for _, path := range category.Paths {
			w.checkUnrelayed(ctx, category, path)
		}
	case domain.CheckBalance:
		w.checkBalance(ctx, category, "", category.BaseChain, w.cfg.Native)
		for _, path := range category.Paths {
			w.checkBalance(ctx, category, path.Key, path.ChainName, path.Tokens)
		}
	}

	w.logger.Debug("Check completed", "check", kind.String(), "category", category.Name)
}

func (w *Walker) selectCategories(selected []string) ([]domain.Category, []error) {
	if len(selected) == 0 {
		return w.cfg.Categories, nil
	}

	var (
		out  []domain.Category
		errs []error
	)
	for _, name := range selected {
		idx := slices.IndexFunc(w.cfg.Categories, func(c domain.Category) bool { return c.Name == name })
		if idx < 0 {
			err := &ConfigError{Category: name, Err: ErrCategoryNotFound}
			w.logger.Error("Skipping category", "category", name, "error", err)
			errs = append(errs, err)
			continue
		}
		out = append(out, w.cfg.Categories[idx])
	}
	return out, errs
}

func validate(category domain.Category) error {
	if category.Namespace == "" {
		return &ConfigError{Category: category.Name, Err: ErrNamespaceMissing}
	}
	if category.Relayer == "" {
		return &ConfigError{Category: category.Name, Err: ErrRelayerMissing}
	}
	return nil
}

// query runs a relayer subcommand. ok is false when there is nothing to report.
func (w *Walker) query(ctx context.Context, category domain.Category, args ...string) (string, bool) {
	argv := append([]string{w.cfg.RelayerBinary}, args...)
	out := w.runner.Run(ctx, category.Deployment(), argv...)
	if out == "" {
		w.logger.Debug("Empty output, skipping", "category", category.Name, "args", argv)
		return "", false
	}
	return out, true
}

func (w *Walker) checkExpiration(ctx context.Context, category domain.Category, path domain.Path) {
	out, ok := w.query(ctx, category, "q", "clients-expiration", path.Key)
	if !ok {
		return
	}

	now := w.now()
	for _, client := range parser.ParseExpirations(out) {
		severity, err := evaluate.Expiry(client, now, w.cfg.Expiry)
		obs := domain.Observation{
			Category: category.Name,
			Kind:     domain.CheckExpiration,
			Path:     path.Key,
			Chain:    client.ChainID,
			Severity: severity,
			Client:   &client,
			Err:      err,
		}
		if client.ExpiresAt != nil {
			obs.Remaining = client.ExpiresAt.Sub(now)
		}
		w.sink.Report(obs)
	}
}

func (w *Walker) checkUnrelayed(ctx context.Context, category domain.Category, path domain.Path) {
	out, ok := w.query(ctx, category, "q", "unrelayed-packets", path.Key, path.Channel)
	if !ok {
		return
	}

	backlog, err := parser.ParseUnrelayed(out)
	severity := domain.SeverityOK
	if backlog {
		severity = domain.SeverityWarn
	}
	w.sink.Report(domain.Observation{
		Category: category.Name,
		Kind:     domain.CheckUnrelayed,
		Path:     path.Key,
		Chain:    path.ChainName,
		Severity: severity,
		Backlog:  backlog,
		Err:      err,
	})
}

// checkBalance serves both the native balance of a category (pathKey empty, native table)
// and the balance of each path (its own table). Denominations missing from the table
// are not reported.
func (w *Walker) checkBalance(
	ctx context.Context,
	category domain.Category,
	pathKey string,
	chain string,
	tokens domain.TokenThresholds,
) {
	out, ok := w.query(ctx, category, "q", "balance", chain)
	if !ok {
		return
	}

	record := parser.ParseBalance(out)
	for _, coin := range record.Balances {
		pair, ok := tokens.Lookup(coin.Denom)
		if !ok {
			continue
		}
		w.sink.Report(domain.Observation{
			Category: category.Name,
			Kind:     domain.CheckBalance,
			Path:     pathKey,
			Chain:    chain,
			Severity: evaluate.Balance(coin.Amount, pair),
			Coin:     &coin,
		})
	}
}
