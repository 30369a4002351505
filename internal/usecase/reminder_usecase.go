package usecase

import (
	"context"
	"time"
)

// TickSummary counts what one reminder tick did
type TickSummary struct {
	Medicines int `json:"medicines"`
	Surfaced  int `json:"surfaced"`
	Warnings  int `json:"warnings"`
	Pruned    int `json:"pruned"`
}

// ReminderUsecase surfaces medicine reminders on a fixed interval
type ReminderUsecase interface {
	// Tick classifies every active medicine at now and notifies each new reminder once
	Tick(ctx context.Context, now time.Time) (*TickSummary, error)
}
