package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	StandHandler struct {
		validate     *validator.Validate
		standService StandService
		timeout      time.Duration
	}

	StandService interface {
		CreateStand(ctx context.Context, sellerID uint, name, description, image string) (domain.Stand, error)
		GetStand(ctx context.Context, id uint) (domain.Stand, error)
		GetStandBySeller(ctx context.Context, sellerID uint) (domain.Stand, error)
		GetAllStands(ctx context.Context) ([]domain.Stand, error)
		UpdateStand(ctx context.Context, sellerID uint, name, description, image string) (domain.Stand, error)
	}

	StandInput struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image,omitempty"`
	}
)

func NewStandHandler(standService StandService) *StandHandler {
	return &StandHandler{
		validate:     validator.New(),
		standService: standService,
		timeout:      10 * time.Second,
	}
}

func (h *StandHandler) CreateStand(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	var request StandInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation stand input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stand, err := h.standService.CreateStand(ctx, sellerID, request.Name, request.Description, request.Image)
	if err != nil {
		logger.Error("Failed to create stand", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(stand))
}

func (h *StandHandler) GetAllStands(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stands, err := h.standService.GetAllStands(ctx)
	if err != nil {
		logger.Error("Failed to get stands", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stands))
}

func (h *StandHandler) GetStand(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid stand id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stand, err := h.standService.GetStand(ctx, uint(id))
	if err != nil {
		logger.Error("Failed to get stand", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stand))
}

// GetMyStand returns the stand owned by the authenticated seller.
func (h *StandHandler) GetMyStand(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stand, err := h.standService.GetStandBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to get seller stand", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stand))
}

func (h *StandHandler) UpdateStand(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	var request StandInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation stand input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stand, err := h.standService.UpdateStand(ctx, sellerID, request.Name, request.Description, request.Image)
	if err != nil {
		logger.Error("Failed to update stand", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stand))
}
