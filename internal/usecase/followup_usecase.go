package usecase

import (
	"context"
	"time"

	"hyperlocal/internal/domain/entity"
)

// FollowUpUsecase defines the interface for the help-request follow-up scan
type FollowUpUsecase interface {
	// RunScan evaluates every open help request once at now and fires at most one
	// stage per request.
	RunScan(ctx context.Context, now time.Time) (*entity.ScanReport, error)
}
