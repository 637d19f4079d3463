package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/internal/projection"
	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/output"
)

var outputFormatFlag string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the projection for one configuration",
	RunE:  runProjection,
}

func init() {
	runCmd.Flags().StringVarP(&outputFormatFlag, "output-format", "f", "", "output format override (pretty, csv)")
}

func runProjection(cmd *cobra.Command, args []string) error {
	location := configPath()
	conf, err := config.LoadConfiguration(location)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", location, err)
	}

	logger, err := initializeLogger(conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}

	for _, warning := range conf.Validate() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cmd.run"),
		)
	}

	ledger, err := projection.GenerateProjection(logger, conf)
	if err != nil {
		return fmt.Errorf("failed to compute projection: %w", err)
	}

	start, end, err := conf.ParseDates()
	if err != nil {
		return fmt.Errorf("failed to parse dates: %w", err)
	}
	metrics := projection.ComputeSaaSMetrics(ledger, start, end, conf.InitialCash)

	switch outputFormat {
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, ledger)
	default:
		output.PrettyFormat(os.Stdout, ledger, metrics)
	}

	logger.Debug("projection run complete",
		zap.String("op", "cmd.run"),
		zap.Int("rows", len(ledger)),
	)

	return nil
}
