package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"
	mockUsecase "hyperlocal/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_RejectsInvalidSchedule(t *testing.T) {
	_, err := New(config.FollowUpConfig{Enabled: true, Schedule: "every five minutes"}, testLogger(), mockUsecase.NewMockFollowUpUsecase(t))

	assert.Error(t, err)
}

func TestScheduler_DisabledDoesNotStart(t *testing.T) {
	uc := mockUsecase.NewMockFollowUpUsecase(t)
	s, err := New(config.FollowUpConfig{Enabled: false, Schedule: "@every 1s"}, testLogger(), uc)
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))
	time.Sleep(1200 * time.Millisecond)

	require.NoError(t, s.Stop(context.Background()))
	uc.AssertNotCalled(t, "RunScan", mock.Anything, mock.Anything)
}

func TestScheduler_RunsScanOnTick(t *testing.T) {
	uc := mockUsecase.NewMockFollowUpUsecase(t)
	s, err := New(config.FollowUpConfig{Enabled: true, Schedule: "@every 1s", ScanTimeout: time.Second}, testLogger(), uc)
	require.NoError(t, err)

	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ran := make(chan struct{}, 1)
	uc.EXPECT().
		RunScan(mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()

			return hasDeadline
		}), fixed).
		RunAndReturn(func(context.Context, time.Time) (*entity.ScanReport, error) {
			select {
			case ran <- struct{}{}:
			default:
			}

			return &entity.ScanReport{}, nil
		})

	require.NoError(t, s.Serve(context.Background()))
	s.Start()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scan did not run")
	}

	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_SkipsOverlappingTicks(t *testing.T) {
	uc := mockUsecase.NewMockFollowUpUsecase(t)
	s, err := New(config.FollowUpConfig{Enabled: true, Schedule: "@every 5m"}, testLogger(), uc)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	uc.EXPECT().
		RunScan(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*entity.ScanReport, error) {
			close(started)
			<-release

			return &entity.ScanReport{}, nil
		}).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.job.Run()
	}()
	<-started

	// A second tick while the first scan is still running is dropped.
	s.job.Run()

	close(release)
	wg.Wait()
}

func TestScheduler_ScanErrorIsContained(t *testing.T) {
	uc := mockUsecase.NewMockFollowUpUsecase(t)
	s, err := New(config.FollowUpConfig{Enabled: true, Schedule: "@every 5m"}, testLogger(), uc)
	require.NoError(t, err)

	uc.EXPECT().RunScan(mock.Anything, mock.Anything).Return(nil, errors.New("store down")).Times(2)

	s.job.Run()
	s.job.Run()
}

func TestScheduler_StopWaitsForRunningScan(t *testing.T) {
	uc := mockUsecase.NewMockFollowUpUsecase(t)
	s, err := New(config.FollowUpConfig{Enabled: true, Schedule: "@every 1s"}, testLogger(), uc)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	uc.EXPECT().
		RunScan(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*entity.ScanReport, error) {
			once.Do(func() { close(started) })
			<-release

			return &entity.ScanReport{}, nil
		})

	s.Start()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, s.Stop(ctx), "stop reports the scan still running")

	close(release)
}
