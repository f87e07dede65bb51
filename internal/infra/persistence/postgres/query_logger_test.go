package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "hyperlocal/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestQueryLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("boom"), want: "Query failed"},
		{name: "not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow", elapsed: time.Second, want: "Slow query"},
		{name: "fast without debug", want: ""},
		{name: "fast with debug", debug: true, want: "[Postgres] Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			newQueryLogger(base, tt.debug).Trace(context.Background(), time.Now().Add(-tt.elapsed), query, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	l := newQueryLogger(slog.New(slog.NewTextHandler(&fallback, nil)), false)
	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE x", 0 }, errors.New("boom"))

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestQueryLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)), false).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "bad %s", "thing")

	assert.Empty(t, buf.String())
}

func TestClassifyViolation(t *testing.T) {
	assert.Equal(t, noViolation, classifyViolation(nil))
	assert.Equal(t, foreignKeyViolation, classifyViolation(gorm.ErrForeignKeyViolated))
	assert.Equal(t, foreignKeyViolation, classifyViolation(errors.New("ERROR: violates foreign key constraint (SQLSTATE 23503)")))
	assert.Equal(t, uniqueViolation, classifyViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.Equal(t, noViolation, classifyViolation(errors.New("connection reset")))
}
