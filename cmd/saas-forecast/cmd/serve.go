package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/internal/server"
	"github.com/askayyi/saas-forecast/pkg/constants"
)

var (
	listenAddress string
	maxUploadSize int64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddress, "listen", constants.DefaultServerAddress, "HTTP listen address")
	serveCmd.Flags().Int64Var(&maxUploadSize, "max-upload-size", constants.DefaultMaxUploadSizeBytes, "maximum configuration upload size in bytes")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	// A config file is optional for the server; it only contributes logging
	// settings when present.
	loggingConfig := config.LoggingConfig{}
	if _, statErr := os.Stat(configPath()); statErr == nil {
		conf, err := config.LoadConfiguration(configPath())
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", configPath(), err)
		}
		loggingConfig = conf.Logging
	}

	logger, err := initializeLogger(loggingConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := viper.GetString("listen")
	if address == "" {
		address = listenAddress
	}

	handler := server.NewHandler(logger, maxUploadSize, Version)
	logger.Info("starting projection API",
		zap.String("op", "cmd.serve"),
		zap.String("address", address),
	)

	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Error("server stopped",
			zap.String("op", "cmd.serve"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
