package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	NotificationHandler struct {
		notificationService NotificationService
		timeout             time.Duration
	}

	NotificationService interface {
		GetUnread(ctx context.Context, userID uint) ([]domain.Notification, error)
		MarkRead(ctx context.Context, id, userID uint) error
		UnreadCount(ctx context.Context, userID uint) (int64, error)
	}
)

func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		timeout:             10 * time.Second,
	}
}

func (h *NotificationHandler) GetUnread(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	notifications, err := h.notificationService.GetUnread(ctx, userID)
	if err != nil {
		logger.Error("Failed to get notifications", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(notifications))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid notification id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.notificationService.MarkRead(ctx, uint(id), userID); err != nil {
		logger.Error("Failed to mark notification read", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Notification marked as read"))
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.notificationService.UnreadCount(ctx, userID)
	if err != nil {
		logger.Error("Failed to count notifications", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]int64{"count": count}))
}
