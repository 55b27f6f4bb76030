package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"kantinkampus/business/menu"
	"kantinkampus/domain"
	"kantinkampus/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	MenuHandler struct {
		validate    *validator.Validate
		menuService MenuService
		timeout     time.Duration
	}

	MenuService interface {
		AddMenu(ctx context.Context, sellerID uint, input menu.MenuInput) (domain.Menu, error)
		GetMenu(ctx context.Context, id uint) (domain.Menu, error)
		GetMenusByStand(ctx context.Context, standID uint) ([]domain.Menu, error)
		GetAvailableMenus(ctx context.Context) ([]domain.Menu, error)
		SearchMenus(ctx context.Context, query string) ([]domain.Menu, error)
		UpdateMenu(ctx context.Context, sellerID, menuID uint, input menu.MenuInput) (domain.Menu, error)
		DeleteMenu(ctx context.Context, sellerID, menuID uint) error
	}

	MenuRequest struct {
		Name        string `json:"name" validate:"required"`
		Price       int64  `json:"price" validate:"required,gt=0"`
		Image       string `json:"image,omitempty"`
		Description string `json:"description,omitempty"`
		Category    string `json:"category,omitempty"`
		Status      string `json:"status,omitempty" validate:"omitempty,oneof=available unavailable"`
	}
)

func NewMenuHandler(menuService MenuService) *MenuHandler {
	return &MenuHandler{
		validate:    validator.New(),
		menuService: menuService,
		timeout:     10 * time.Second,
	}
}

func (h *MenuHandler) AddMenu(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	var request MenuRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation menu input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.menuService.AddMenu(ctx, sellerID, menu.MenuInput{
		Name:        request.Name,
		Price:       request.Price,
		Image:       request.Image,
		Description: request.Description,
		Category:    request.Category,
		Status:      request.Status,
	})
	if err != nil {
		logger.Error("Failed to add menu", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.menuService.GetMenu(ctx, uint(id))
	if err != nil {
		logger.Error("Failed to get menu", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(found))
}

func (h *MenuHandler) GetMenusByStand(c echo.Context) error {
	standID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid stand id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	menus, err := h.menuService.GetMenusByStand(ctx, uint(standID))
	if err != nil {
		logger.Error("Failed to get stand menus", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(menus))
}

// GetMenus lists available menus across all stands, optionally filtered
// by a ?q= search term.
func (h *MenuHandler) GetMenus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	var (
		menus []domain.Menu
		err   error
	)

	if q := c.QueryParam("q"); q != "" {
		menus, err = h.menuService.SearchMenus(ctx, q)
	} else {
		menus, err = h.menuService.GetAvailableMenus(ctx)
	}
	if err != nil {
		logger.Error("Failed to get menus", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(menus))
}

func (h *MenuHandler) UpdateMenu(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	var request MenuRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation menu input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.menuService.UpdateMenu(ctx, sellerID, uint(menuID), menu.MenuInput{
		Name:        request.Name,
		Price:       request.Price,
		Image:       request.Image,
		Description: request.Description,
		Category:    request.Category,
		Status:      request.Status,
	})
	if err != nil {
		logger.Error("Failed to update menu", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *MenuHandler) DeleteMenu(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.menuService.DeleteMenu(ctx, sellerID, uint(menuID)); err != nil {
		logger.Error("Failed to delete menu", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Menu deleted successfully"))
}
