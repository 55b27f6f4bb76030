package rest

import (
	"context"
	"net/http"
	"time"

	"kantinkampus/business/stats"
	"kantinkampus/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	StatsHandler struct {
		statsService StatsService
		timeout      time.Duration
	}

	StatsService interface {
		GetSellerStats(ctx context.Context, sellerID uint) (stats.SellerStats, error)
	}
)

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		timeout:      10 * time.Second,
	}
}

func (h *StatsHandler) GetSellerStats(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sellerStats, err := h.statsService.GetSellerStats(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to get seller stats", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sellerStats))
}
