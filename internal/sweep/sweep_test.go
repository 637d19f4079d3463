package sweep

import (
	"testing"

	"github.com/askayyi/saas-forecast/internal/config"
)

func scenarioConfig(initialClients int) *config.Configuration {
	conf := config.DefaultConfiguration()
	conf.StartDate = "2026-01-01"
	conf.EndDate = "2027-12-01"
	conf.InitialClients = initialClients
	return conf
}

func TestRunPreservesScenarioOrder(t *testing.T) {
	scenarios := []Scenario{
		{Name: "Conservative", Config: scenarioConfig(5)},
		{Name: "Base", Config: scenarioConfig(10)},
		{Name: "Aggressive", Config: scenarioConfig(50)},
	}

	results := Run(nil, scenarios)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, expected 3", len(results))
	}

	for i, expected := range []string{"Conservative", "Base", "Aggressive"} {
		if results[i].Name != expected {
			t.Errorf("results[%d].Name = %q, expected %q", i, results[i].Name, expected)
		}
		if results[i].Err != nil {
			t.Errorf("scenario %q failed: %v", expected, results[i].Err)
		}
		if len(results[i].Ledger) == 0 {
			t.Errorf("scenario %q produced an empty ledger", expected)
		}
	}

	// More initial clients means more revenue over the same horizon.
	if results[2].Ledger.TotalRevenue() <= results[0].Ledger.TotalRevenue() {
		t.Error("aggressive scenario should out-earn the conservative one")
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	broken := scenarioConfig(10)
	broken.StartDate = "not-a-date"

	results := Run(nil, []Scenario{
		{Name: "Broken", Config: broken},
		{Name: "Healthy", Config: scenarioConfig(10)},
	})

	if results[0].Err == nil {
		t.Error("expected the broken scenario to report an error")
	}
	if results[1].Err != nil {
		t.Errorf("healthy scenario failed: %v", results[1].Err)
	}
	if len(results[1].Ledger) == 0 {
		t.Error("healthy scenario produced an empty ledger")
	}
}

func TestRunEmpty(t *testing.T) {
	if results := Run(nil, nil); len(results) != 0 {
		t.Errorf("len(results) = %d, expected 0", len(results))
	}
}
