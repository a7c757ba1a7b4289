package main

import "github.com/dm/alertcard/internal/model"

// sampleAlerts is the built-in feed: one alert per severity, most severe first.
func sampleAlerts() []model.Alert {
	return []model.Alert{
		{
			ID:          "sample-critical",
			Severity:    model.SeverityCritical,
			Title:       "Overdose spike reported nearby",
			RiskSummary: "Multiple overdoses were reported in the last two hours. Do not use alone, carry naloxone, and call emergency services at the first sign of an overdose. Test anything you plan to use.",
		},
		{
			ID:          "sample-high",
			Severity:    model.SeverityHigh,
			Title:       "Contaminated batch circulating",
			RiskSummary: "A batch with unexpected adulterants has been identified. Start with a small amount and avoid mixing substances.",
		},
		{
			ID:          "sample-medium",
			Severity:    model.SeverityMedium,
			Title:       "Heat risk this afternoon",
			RiskSummary: "High temperatures expected. Stay hydrated, rest in the shade, and check on others.",
		},
		{
			ID:          "sample-low",
			Severity:    model.SeverityLow,
			Title:       "Drop-in testing hours extended",
			RiskSummary: "Free testing is available until 9pm this week.",
		},
	}
}
