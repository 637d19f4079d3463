package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/internal/sweep"
	"github.com/askayyi/saas-forecast/pkg/format"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <config>...",
	Short: "Run projections for multiple configurations side by side",
	Long: `Run the projection for each configuration file concurrently and print
a summary per scenario. Scenario names are derived from the file names.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	scenarios := make([]sweep.Scenario, 0, len(args))
	for _, path := range args {
		conf, err := config.LoadConfiguration(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		scenarios = append(scenarios, sweep.Scenario{Name: name, Config: conf})
	}

	logger, err := initializeLogger(scenarios[0].Config.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	results := sweep.Run(logger, scenarios)

	fmt.Printf("Scenario             | Periods | Total Revenue     | Final Cash        | IRR      | ROI\n")
	fmt.Printf("________             | _______ | _____________     | __________        | ___      | ___\n")
	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Printf("%-20s | failed: %v\n", result.Name, result.Err)
			continue
		}
		fmt.Printf("%-20s | %7d | %17s | %17s | %7.2f%% | %7.2f%%\n",
			result.Name,
			len(result.Ledger),
			format.Currency(result.Ledger.TotalRevenue()),
			format.Currency(result.Ledger.FinalCash()),
			result.Metrics.IRR,
			result.Metrics.ROI,
		)
		for _, warning := range result.Warnings {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "cmd.compare"),
				zap.String("scenario", result.Name),
			)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failures, len(results))
	}
	return nil
}
