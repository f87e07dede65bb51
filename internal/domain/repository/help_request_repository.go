package repository

import (
	"context"
	"time"

	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
)

// StageAdvance is a conditional follow-up transition. It applies only when the
// stored stage still equals ExpectedStage, the state is not complete and the
// request is still open.
type StageAdvance struct {
	RequestID      uuid.UUID
	ExpectedStage  int
	NextStage      int
	LastNotifiedAt time.Time
	Complete       bool
}

// HelpRequestRepository is the request-state store used by the follow-up scheduler.
type HelpRequestRepository interface {
	// FindOpenFollowUps lists open requests whose follow-up is not complete.
	FindOpenFollowUps(ctx context.Context) ([]*entity.HelpRequest, error)

	// AdvanceFollowUpStage commits stage, timestamp and completion in one write.
	// It returns false without error when the condition no longer holds.
	AdvanceFollowUpStage(ctx context.Context, advance StageAdvance) (bool, error)
}
