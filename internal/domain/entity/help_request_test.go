package entity

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRequestStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want RequestStatus
	}{
		{raw: "open", want: RequestStatusOpen},
		{raw: "OPEN", want: RequestStatusOpen},
		{raw: " open", want: RequestStatusOpen},
		{raw: "Open ", want: RequestStatusOpen},
		{raw: "Pending", want: RequestStatusOpen},
		{raw: "in-progress", want: RequestStatusInProgress},
		{raw: "In Progress", want: RequestStatusInProgress},
		{raw: "In_Progress", want: RequestStatusInProgress},
		{raw: "in progress", want: RequestStatusInProgress},
		{raw: "InProgress", want: RequestStatusInProgress},
		{raw: "Accepted", want: RequestStatusInProgress},
		{raw: "Completed", want: RequestStatusCompleted},
		{raw: "resolved", want: RequestStatusCompleted},
		{raw: "canceled", want: RequestStatusCancelled},
		{raw: "CANCELLED", want: RequestStatusCancelled},
		{raw: "archived", want: RequestStatusUnknown},
		{raw: "", want: RequestStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequestStatus(tt.raw))
		})
	}
}

// The store filters on NormalizeStatusToken(status) IN OpenStatusTokens(), so
// every spelling the parser treats as open has to land in that set, and nothing else may.
func TestOpenStatusTokens_MatchParser(t *testing.T) {
	spellings := []string{
		"open", "OPEN", "Open", " open", "Open ", "pending", "Pending", "PENDING",
		"in_progress", "IN_PROGRESS", "In_Progress", "in-progress", "IN-PROGRESS",
		"In Progress", "in progress", "inprogress", "InProgress", "accepted", "Accepted",
		"completed", "Complete", "resolved", "closed", "cancelled", "Canceled", "archived", "",
	}

	for _, raw := range spellings {
		t.Run(raw, func(t *testing.T) {
			selected := slices.Contains(OpenStatusTokens(), NormalizeStatusToken(raw))

			assert.Equal(t, ParseRequestStatus(raw).IsOpen(), selected)
		})
	}

	for _, token := range OpenStatusTokens() {
		assert.Equal(t, token, NormalizeStatusToken(token), "tokens are stored normalized")
		assert.True(t, ParseRequestStatus(token).IsOpen(), token)
	}
}

func TestFollowUpState_NextFollowUp(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		state     FollowUpState
		now       time.Time
		wantDue   bool
		wantTitle string
	}{
		{name: "before first threshold", state: NewFollowUpState(t0), now: t0.Add(29 * time.Minute)},
		{name: "first threshold reached", state: NewFollowUpState(t0), now: t0.Add(30 * time.Minute), wantDue: true, wantTitle: "30-min check"},
		{name: "one hour after stage 1", state: FollowUpState{Stage: 1, LastNotifiedAt: t0}, now: t0.Add(time.Hour), wantDue: true, wantTitle: "1-hour follow-up"},
		{name: "seven days after stage 4", state: FollowUpState{Stage: 4, LastNotifiedAt: t0}, now: t0.Add(7 * 24 * time.Hour), wantDue: true, wantTitle: "7-day completion check"},
		{name: "final stage", state: FollowUpState{Stage: FinalFollowUpStage, LastNotifiedAt: t0}, now: t0.Add(30 * 24 * time.Hour)},
		{name: "complete", state: FollowUpState{Stage: 2, LastNotifiedAt: t0, Complete: true}, now: t0.Add(30 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, due := tt.state.NextFollowUp(tt.now)

			assert.Equal(t, tt.wantDue, due)
			assert.Equal(t, tt.wantTitle, stage.Title)
		})
	}
}

func TestFollowUpState_Advance(t *testing.T) {
	now := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, FollowUpState{Stage: 1, LastNotifiedAt: now}, NewFollowUpState(now.Add(-time.Hour)).Advance(now))
	assert.Equal(t, FollowUpState{Stage: 5, LastNotifiedAt: now, Complete: true}, FollowUpState{Stage: 4}.Advance(now))
}
