// Package server exposes the projection engine over HTTP. Clients POST a
// YAML configuration and receive the full ledger, headline metrics, and a CSV
// rendering in one JSON response.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/internal/projection"
	"github.com/askayyi/saas-forecast/pkg/constants"
	"github.com/askayyi/saas-forecast/pkg/output"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/projection", h.handleProjection)
	mux.HandleFunc("/api/defaults", h.handleDefaults)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type projectionResponse struct {
	Rows     projection.Ledger  `json:"rows"`
	Metrics  projection.Metrics `json:"metrics"`
	CSV      string             `json:"csv"`
	Warnings []string           `json:"warnings,omitempty"`
	Duration string             `json:"duration"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handleProjection")
			return
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to read configuration: %v", err), "server.handleProjection")
		return
	}

	conf, err := config.ParseConfiguration(body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleProjection")
		return
	}

	warnings := conf.Validate()

	ledger, err := projection.GenerateProjection(h.logger, conf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to compute projection: %v", err), "server.handleProjection")
		return
	}

	projStart, projEnd, err := conf.ParseDates()
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to parse dates: %v", err), "server.handleProjection")
		return
	}
	metrics := projection.ComputeSaaSMetrics(ledger, projStart, projEnd, conf.InitialCash)

	elapsed := time.Since(start)
	h.logger.Info("projection computed",
		zap.String("op", "server.handleProjection"),
		zap.Int("rows", len(ledger)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Rows:     ledger,
		Metrics:  metrics,
		CSV:      output.CsvString(ledger),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, config.DefaultConfiguration())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, op string) {
	h.logger.Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
