package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hyperlocal/internal/delivery/api/response"
	deliverycontext "hyperlocal/internal/delivery/context"
	"hyperlocal/internal/domain/entity"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	AudienceUC     usecase.AudienceUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler exposes audience broadcasts and single-recipient notifications
type NotificationHandler struct {
	audienceUC     usecase.AudienceUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		audienceUC:     params.AudienceUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// BroadcastRequest targets everyone in a locality scope. Locality, TargetLocalities
// and Communities may overlap; each recipient is notified once.
type BroadcastRequest struct {
	ActorID              string   `json:"actor_id" validate:"omitempty,uuid"`
	Locality             string   `json:"locality"`
	TargetLocalities     []string `json:"target_localities"`
	Communities          []string `json:"communities"`
	Town                 string   `json:"town"`
	ProfessionCategories []string `json:"profession_categories"`
	BloodGroup           string   `json:"blood_group" validate:"omitempty,bloodgroup"`
	Title                string   `json:"title" validate:"notblank,max=200"`
	Body                 string   `json:"body" validate:"notblank,max=4000"`
	Link                 string   `json:"link" validate:"omitempty,max=2048"`
	Category             string   `json:"category" validate:"required,oneof=service alert event blood_donation system"`
	Async                bool     `json:"async"`
}

// BroadcastResponse reports how many recipients were reached.
type BroadcastResponse struct {
	*entity.DeliveryReport
	Queued bool `json:"queued"`
}

// CreateNotificationRequest is the body for a single-recipient notification
type CreateNotificationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"notblank,max=200"`
	Body        string `json:"body" validate:"notblank,max=4000"`
	Category    string `json:"category" validate:"required,max=50"`
	Link        string `json:"link" validate:"omitempty,max=2048"`
	EmailHTML   string `json:"email_html"`
	SkipEmail   bool   `json:"skip_email"`
}

// Broadcast resolves the audience and routes the notification to it
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	actorID := uuid.Nil
	if req.ActorID != "" {
		actorID = uuid.MustParse(req.ActorID)
	}

	ctx := c.Request().Context()
	scope := entity.ScopeFromTerms(req.Town, []string{req.Locality}, req.TargetLocalities, req.Communities)
	filters := entity.AudienceFilters{
		ProfessionCategories: req.ProfessionCategories,
		BloodGroup:           entity.ForAlert(req.Category, req.BloodGroup).BloodGroup,
	}

	recipients, err := h.audienceUC.ResolveAudience(ctx, scope, filters, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := entity.NotificationPayload{
		Title:    req.Title,
		Body:     req.Body,
		Link:     req.Link,
		Category: req.Category,
	}

	if req.Async {
		if err := h.notificationUC.DispatchAsync(recipients, payload); err != nil {
			deliverycontext.LoggerFrom(ctx, h.logger).Warn("Broadcast not queued", slog.Any("error", err))

			return response.Error(c, http.StatusServiceUnavailable, "DISPATCH_QUEUE_FULL", "Delivery queue is busy, retry later", nil)
		}

		return response.Success(c, http.StatusAccepted, BroadcastResponse{
			DeliveryReport: countByContact(recipients),
			Queued:         true,
		})
	}

	report, err := h.notificationUC.Route(ctx, recipients, payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BroadcastResponse{DeliveryReport: report})
}

// countByContact mirrors the router's report for a queued broadcast.
func countByContact(recipients []*entity.Recipient) *entity.DeliveryReport {
	report := &entity.DeliveryReport{RecipientCount: len(recipients)}
	for _, r := range recipients {
		switch {
		case r.HasEmail():
			report.EmailCount++
		case r.HasPushToken():
			report.PushCount++
		}
	}

	return report
}

// CreateNotification delivers a notification to one recipient
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	record, err := h.notificationUC.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		RecipientID: uuid.MustParse(req.RecipientID),
		Title:       req.Title,
		Body:        req.Body,
		Category:    req.Category,
		Link:        req.Link,
		EmailHTML:   req.EmailHTML,
		SkipEmail:   req.SkipEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if record == nil {
		return response.Success(c, http.StatusOK, map[string]any{"delivered": false})
	}

	return response.Success(c, http.StatusCreated, record)
}

// ListNotifications returns a recipient's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
	}

	limit := queryInt(c, "limit", defaultPageLimit)
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := h.notificationUC.ListNotifications(c.Request().Context(), recipientID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// MarkAsRead flags one notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
	}

	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkAsRead(c.Request().Context(), recipientID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}
