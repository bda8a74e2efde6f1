package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/relaywatch/internal/control"
	"github.com/vietddude/relaywatch/internal/core/config"
	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/health"
	"github.com/vietddude/relaywatch/internal/infra/command"
	"github.com/vietddude/relaywatch/internal/metrics"
	"github.com/vietddude/relaywatch/internal/report"
	"github.com/vietddude/stylelog"
)

// exitStrict is returned by --strict runs that found errors.
const exitStrict = 2

var (
	cfgPath     string
	isDebug     bool
	categories  []string
	timeout     time.Duration
	strict      bool
	pushgateway string

	checkExpiration bool
	checkUnrelayed  bool
	checkBalance    bool
	checkAll        bool
)

var rootCmd = &cobra.Command{
	Use:   "relaywatch",
	Short: "Relayer fleet health checks",
	Long: `Relaywatch inspects the configured IBC relayer paths for expiring clients,
unrelayed packets and low balances, and reports each finding as OK, WARN or ERROR.`,
	Run: runChecks,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&categories, "category", nil, "only check these categories (repeatable)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout for each relayer command (overrides runner.timeout)")

	rootCmd.Flags().BoolVar(&checkExpiration, "expiration", false, "check for expirations")
	rootCmd.Flags().BoolVar(&checkUnrelayed, "unrelayed", false, "check for unrelayed packets")
	rootCmd.Flags().BoolVar(&checkBalance, "balance", false, "check for low balance")
	rootCmd.Flags().BoolVar(&checkAll, "all", false, "check all")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "exit with status 2 on errors, undetermined results or configuration failures")
	rootCmd.Flags().StringVar(&pushgateway, "pushgateway", "", "push run metrics to this Pushgateway URL (overrides metrics.pushgateway)")
}

func runChecks(cmd *cobra.Command, args []string) {
	kinds := checkKinds(checkExpiration, checkUnrelayed, checkBalance, checkAll)
	if len(kinds) == 0 {
		_ = cmd.Help()
		os.Exit(1)
	}

	cfg := loadConfig()
	logger := slog.Default().With("run", uuid.NewString())

	summary := health.NewSummary()
	recorder := metrics.New()
	sink := report.NewMulti(report.NewLogSink(logger), summary, recorder)

	executor := command.NewExecutor(cfg.Command(timeout), logger)
	walker := control.NewWalker(cfg.Fleet(), executor, sink, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Debug("Starting checks", "checks", kinds, "config", cfgPath)
	err := walker.Run(ctx, kinds, categories)
	recordFailures(summary, err, logger)

	metricsCfg := cfg.Metrics
	if pushgateway != "" {
		metricsCfg.Pushgateway = pushgateway
	}
	if err := recorder.Push(ctx, metricsCfg, time.Now()); err != nil {
		logger.Error("Failed to push metrics", "error", err)
	}

	result := summary.Snapshot()
	result.Print(os.Stdout)

	if strict && result.Failed() {
		stop()
		os.Exit(exitStrict)
	}
}

// loadConfig loads .env and the config file, then sets up the default logger.
func loadConfig() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := logLevel(cfg.Logging.Level)
	if isDebug {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})
	return cfg
}

func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// checkKinds turns the check flags into the kinds to run, in run order.
func checkKinds(expiration, unrelayed, balance, all bool) []domain.CheckKind {
	if all {
		return domain.AllCheckKinds
	}
	var kinds []domain.CheckKind
	if expiration {
		kinds = append(kinds, domain.CheckExpiration)
	}
	if unrelayed {
		kinds = append(kinds, domain.CheckUnrelayed)
	}
	if balance {
		kinds = append(kinds, domain.CheckBalance)
	}
	return kinds
}

// recordFailures adds the walker's configuration failures to the summary.
func recordFailures(summary *health.Summary, err error, logger *slog.Logger) {
	if err == nil {
		return
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var cfgErr *control.ConfigError
		if errors.As(e, &cfgErr) {
			summary.Fail(cfgErr.Category, cfgErr)
			continue
		}
		logger.Warn("Run interrupted", "error", e)
		summary.Fail("run", fmt.Errorf("interrupted: %w", e))
	}
}
