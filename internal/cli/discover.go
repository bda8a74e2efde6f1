package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vietddude/relaywatch/internal/control"
	"github.com/vietddude/relaywatch/internal/infra/command"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [category...]",
	Short: "Compare the paths known to each relayer with the configured paths",
	Run:   runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	selected := append(append([]string(nil), categories...), args...)

	executor := command.NewExecutor(cfg.Command(timeout), slog.Default())
	walker := control.NewWalker(cfg.Fleet(), executor, nil, slog.Default())

	drifts, err := walker.Discover(context.Background(), selected)
	if err != nil {
		slog.Error("Discovery incomplete", "error", err)
	}

	inSync := true
	for _, d := range drifts {
		if d.InSync() {
			fmt.Printf("%s: in sync\n", d.Category)
			continue
		}
		inSync = false
		fmt.Printf("%s: %d missing on relayer, %d not configured\n", d.Category, len(d.Missing), len(d.Unconfigured))
	}

	if err != nil || !inSync {
		os.Exit(1)
	}
}
