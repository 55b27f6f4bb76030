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
	FavoriteHandler struct {
		favoriteService FavoriteService
		timeout         time.Duration
	}

	FavoriteService interface {
		Toggle(ctx context.Context, buyerID, menuID uint) (bool, error)
		GetFavoriteMenus(ctx context.Context, buyerID uint) ([]domain.Menu, error)
	}
)

func NewFavoriteHandler(favoriteService FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		timeout:         10 * time.Second,
	}
}

// Toggle flips the favorite state of a menu for the authenticated buyer.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	favorited, err := h.favoriteService.Toggle(ctx, buyerID, uint(menuID))
	if err != nil {
		logger.Error("Failed to toggle favorite", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]bool{"favorited": favorited}))
}

func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	menus, err := h.favoriteService.GetFavoriteMenus(ctx, buyerID)
	if err != nil {
		logger.Error("Failed to get favorite menus", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(menus))
}
