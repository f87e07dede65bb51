package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle status of a help request.
type RequestStatus string

const (
	RequestStatusUnknown    RequestStatus = ""
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// ParseRequestStatus normalizes a stored status token. Historical rows hold both
// "OPEN" and "open", and "in-progress" as well as "IN_PROGRESS".
func ParseRequestStatus(raw string) RequestStatus {
	switch NormalizeStatusToken(raw) {
	case "open", "pending":
		return RequestStatusOpen
	case "in_progress", "inprogress", "accepted":
		return RequestStatusInProgress
	case "completed", "complete", "resolved", "closed":
		return RequestStatusCompleted
	case "cancelled", "canceled":
		return RequestStatusCancelled
	default:
		return RequestStatusUnknown
	}
}

// NormalizeStatusToken folds a stored status to its canonical token: trimmed,
// lower-cased, with dashes and spaces turned into underscores. The store repeats
// this as a SQL expression, so keep the two in step.
func NormalizeStatusToken(raw string) string {
	token := strings.ToLower(strings.Trim(raw, " "))
	token = strings.ReplaceAll(token, "-", "_")

	return strings.ReplaceAll(token, " ", "_")
}

// IsOpen reports whether the request has not reached a terminal outcome.
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusOpen || s == RequestStatusInProgress
}

// OpenStatusTokens lists the normalized tokens that parse to an open status.
// Compare them against NormalizeStatusToken output, never against raw values.
func OpenStatusTokens() []string {
	return []string{"open", "pending", "in_progress", "inprogress", "accepted"}
}

// FollowUpState is the escalation state embedded in a help request.
type FollowUpState struct {
	Stage          int       `json:"stage"`
	LastNotifiedAt time.Time `json:"last_notified_at"`
	Complete       bool      `json:"complete"`
}

// HelpRequest is the subset of a help request the follow-up scheduler needs.
type HelpRequest struct {
	ID          uuid.UUID     `json:"id"`
	RequesterID uuid.UUID     `json:"requester_id"`
	Title       string        `json:"title"`
	Status      RequestStatus `json:"status"`
	FollowUp    FollowUpState `json:"follow_up"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewFollowUpState returns the state a help request starts with.
func NewFollowUpState(createdAt time.Time) FollowUpState {
	return FollowUpState{Stage: 0, LastNotifiedAt: createdAt}
}

// FollowUpStage describes one row of the escalation table.
type FollowUpStage struct {
	Stage     int
	Threshold time.Duration
	Title     string
	Message   string
}

// FinalFollowUpStage is the terminal stage.
const FinalFollowUpStage = 5

// FollowUpStages is indexed by the current stage; entry i fires the transition i -> i+1.
var FollowUpStages = [FinalFollowUpStage]FollowUpStage{
	{Stage: 0, Threshold: 30 * time.Minute, Title: "30-min check", Message: "It has been 30 minutes since you posted \"%s\". Has anyone reached out to help?"},
	{Stage: 1, Threshold: 60 * time.Minute, Title: "1-hour follow-up", Message: "Your request \"%s\" has been open for an hour. Update it if you still need help."},
	{Stage: 2, Threshold: 60 * time.Minute, Title: "2-hour update", Message: "Your request \"%s\" is still open after two hours. Neighbours can still respond."},
	{Stage: 3, Threshold: 60 * time.Minute, Title: "3-hour final heads-up", Message: "Final heads-up: \"%s\" has been open for three hours. Mark it completed once resolved."},
	{Stage: 4, Threshold: 7 * 24 * time.Hour, Title: "7-day completion check", Message: "A week has passed since \"%s\". Please mark it completed or cancelled."},
}

// NextFollowUp returns the transition due for the state at now, if any.
// It never advances more than one stage regardless of how much time has passed.
func (s FollowUpState) NextFollowUp(now time.Time) (FollowUpStage, bool) {
	if s.Complete || s.Stage < 0 || s.Stage >= FinalFollowUpStage {
		return FollowUpStage{}, false
	}

	stage := FollowUpStages[s.Stage]
	if now.Sub(s.LastNotifiedAt) < stage.Threshold {
		return FollowUpStage{}, false
	}

	return stage, true
}

// Advance returns the state after firing the current stage at now.
func (s FollowUpState) Advance(now time.Time) FollowUpState {
	next := s.Stage + 1

	return FollowUpState{
		Stage:          next,
		LastNotifiedAt: now,
		Complete:       next >= FinalFollowUpStage,
	}
}

// ScanReport summarises one follow-up scan cycle.
type ScanReport struct {
	Scanned  int `json:"scanned"`
	Advanced int `json:"advanced"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
