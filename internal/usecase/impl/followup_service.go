package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/errors"
	"hyperlocal/internal/infra/metrics"
	"hyperlocal/internal/usecase"
	"hyperlocal/internal/util"
)

const (
	requestStore = "request_store"
	scanLock     = "scan_lock"
)

type scanResult int

const (
	scanSkipped scanResult = iota
	scanAdvanced
	scanFailed
)

type followUpService struct {
	logger          *slog.Logger
	metrics         *metrics.Metrics
	helpRequestRepo repository.HelpRequestRepository
	recipientRepo   repository.RecipientRepository
	notifier        usecase.NotificationUsecase
	locker          service.ScanLocker
}

// NewFollowUpService creates the help-request follow-up scanner
func NewFollowUpService(
	logger *slog.Logger,
	m *metrics.Metrics,
	helpRequestRepo repository.HelpRequestRepository,
	recipientRepo repository.RecipientRepository,
	notifier usecase.NotificationUsecase,
	locker service.ScanLocker,
) usecase.FollowUpUsecase {
	return &followUpService{
		logger:          logger,
		metrics:         m,
		helpRequestRepo: helpRequestRepo,
		recipientRepo:   recipientRepo,
		notifier:        notifier,
		locker:          locker,
	}
}

// RunScan evaluates every open request against its current stage. Each request
// advances at most one stage, and the advance is committed before anyone is notified.
func (s *followUpService) RunScan(ctx context.Context, now time.Time) (*entity.ScanReport, error) {
	started := time.Now()

	if s.locker != nil {
		release, ok, err := s.locker.TryLock(ctx)
		if err != nil {
			s.metrics.ObserveScan("error", time.Since(started))

			return nil, domainerrors.NewDependencyError(scanLock, err)
		}
		if !ok {
			s.metrics.ObserveScan("locked", 0)
			s.logger.Info("[FollowUp] Scan already running elsewhere, skipping")

			return &entity.ScanReport{}, nil
		}
		defer release()
	}

	requests, err := s.helpRequestRepo.FindOpenFollowUps(ctx)
	if err != nil {
		s.metrics.ObserveScan("error", time.Since(started))
		s.logger.Error("[FollowUp] Failed to list open requests", slog.Any("error", err))

		return nil, domainerrors.NewDependencyError(requestStore, err)
	}

	report := &entity.ScanReport{Scanned: len(requests)}

	for i, req := range requests {
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.Skipped += len(requests) - i
			s.metrics.ObserveScan("error", time.Since(started))
			s.logger.Warn("[FollowUp] Scan interrupted",
				slog.Int("remaining", len(requests)-i),
				slog.Any("error", ctxErr),
			)

			return report, errors.Wrap(ctxErr, "scan interrupted")
		}

		switch s.process(ctx, req, now) {
		case scanAdvanced:
			report.Advanced++
		case scanFailed:
			report.Failed++
		default:
			report.Skipped++
		}
	}

	s.metrics.ObserveScan("ok", time.Since(started))
	s.logger.Info("[FollowUp] Scan completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("advanced", report.Advanced),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func (s *followUpService) process(ctx context.Context, req *entity.HelpRequest, now time.Time) scanResult {
	if req == nil || !req.Status.IsOpen() {
		return scanSkipped
	}

	stage, due := req.FollowUp.NextFollowUp(now)
	if !due {
		return scanSkipped
	}

	next := req.FollowUp.Advance(now)
	logger := s.logger.With(
		slog.String("request_id", req.ID.String()),
		slog.Int("stage", req.FollowUp.Stage),
	)

	committed, err := s.helpRequestRepo.AdvanceFollowUpStage(ctx, repository.StageAdvance{
		RequestID:      req.ID,
		ExpectedStage:  req.FollowUp.Stage,
		NextStage:      next.Stage,
		LastNotifiedAt: next.LastNotifiedAt,
		Complete:       next.Complete,
	})
	if err != nil {
		logger.Error("[FollowUp] Stage advance not committed",
			slog.Any("error", domainerrors.NewPersistenceError("advance follow-up stage", err)),
		)

		return scanFailed
	}
	if !committed {
		logger.Debug("[FollowUp] Request changed since listing, skipping")

		return scanSkipped
	}

	s.metrics.ObserveStageAdvance(strconv.Itoa(next.Stage))
	logger.Info("[FollowUp] Stage advanced",
		slog.Int("next_stage", next.Stage),
		slog.String("open_for", util.FormatDuration(now.Sub(req.CreatedAt))),
	)
	s.notify(ctx, logger, req, stage)

	return scanAdvanced
}

// notify sends the in-app reminder and, when the requester has an address, a
// plain email. The requester is looked up once for both. Failures are logged
// only: the stage is already committed.
func (s *followUpService) notify(ctx context.Context, logger *slog.Logger, req *entity.HelpRequest, stage entity.FollowUpStage) {
	requester, err := s.recipientRepo.FindRecipientByID(ctx, req.RequesterID)
	if err != nil {
		logger.Warn("[FollowUp] Requester lookup failed, reminders skipped", slog.Any("error", err))

		return
	}

	payload := entity.NotificationPayload{
		Title:    stage.Title,
		Body:     fmt.Sprintf(stage.Message, req.Title),
		Link:     "/help-requests/" + req.ID.String(),
		Category: entity.CategoryFollowUp,
	}

	record, err := s.notifier.CreateNotification(ctx, &usecase.CreateNotificationInput{
		RecipientID: req.RequesterID,
		Title:       payload.Title,
		Body:        payload.Body,
		Category:    payload.Category,
		Link:        payload.Link,
		SkipEmail:   true,
		Recipient:   requester,
	})
	switch {
	case err != nil:
		logger.Warn("[FollowUp] In-app reminder failed", slog.Any("error", err))
	case record == nil:
		logger.Debug("[FollowUp] In-app reminder not delivered")
	}

	if err := s.notifier.DispatchEmail(requester, payload); err != nil {
		logger.Warn("[FollowUp] Email reminder not queued", slog.Any("error", err))
	}
}
