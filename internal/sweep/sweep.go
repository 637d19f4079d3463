// Package sweep runs projections for multiple scenario configurations
// concurrently so they can be compared side by side.
package sweep

import (
	"sync"

	"go.uber.org/zap"

	"github.com/askayyi/saas-forecast/internal/config"
	"github.com/askayyi/saas-forecast/internal/projection"
)

// Scenario pairs a display name with the configuration to project.
type Scenario struct {
	Name   string
	Config *config.Configuration
}

// Result is the projection outcome for one scenario. Err is set when the
// scenario failed; the other fields are then zero values.
type Result struct {
	Name     string
	Ledger   projection.Ledger
	Metrics  projection.Metrics
	Warnings []string
	Err      error
}

// Run projects every scenario concurrently and returns results in scenario
// order. A failed scenario never aborts the others.
func Run(logger *zap.Logger, scenarios []Scenario) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup

	for i, scenario := range scenarios {
		wg.Add(1)
		go func(i int, scenario Scenario) {
			defer wg.Done()
			results[i] = runScenario(logger, scenario)
		}(i, scenario)
	}
	wg.Wait()

	logger.Debug("scenario sweep complete",
		zap.String("op", "sweep.Run"),
		zap.Int("scenarios", len(scenarios)),
	)

	return results
}

func runScenario(logger *zap.Logger, scenario Scenario) Result {
	result := Result{Name: scenario.Name}

	ledger, err := projection.GenerateProjection(logger, scenario.Config)
	if err != nil {
		logger.Error("scenario projection failed",
			zap.String("op", "sweep.Run"),
			zap.String("scenario", scenario.Name),
			zap.Error(err),
		)
		result.Err = err
		return result
	}

	start, end, err := scenario.Config.ParseDates()
	if err != nil {
		result.Err = err
		return result
	}

	result.Ledger = ledger
	result.Metrics = projection.ComputeSaaSMetrics(ledger, start, end, scenario.Config.InitialCash)
	result.Warnings = scenario.Config.Validate()
	return result
}
