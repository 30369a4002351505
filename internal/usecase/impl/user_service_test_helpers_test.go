package impl

import (
	"io"
	"log/slog"
	"time"

	"careconnect/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Monitor: config.MonitorConfig{
			LeadWindow:        10 * time.Minute,
			HistoryRetention:  30 * 24 * time.Hour,
			AnalysisWindow:    12 * time.Hour,
			Timezone:          "UTC",
			DefaultRadius:     500,
			MinRadius:         100,
			MaxRadius:         5000,
			SimulatedLocation: config.LatLng{Lat: 12.9716, Lng: 77.5946},
		},
		LLM: config.LLMConfig{
			ImageBaseURL: "https://image.example.com/prompt/",
			HistoryLimit: 20,
		},
	}
}
