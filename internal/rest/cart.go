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
	CartHandler struct {
		validate    *validator.Validate
		cartService CartService
		timeout     time.Duration
	}

	CartService interface {
		AddToCart(ctx context.Context, buyerID, menuID uint, qty int, notes string) (domain.CartLine, error)
		GetCart(ctx context.Context, buyerID uint) ([]domain.CartGroup, error)
		UpdateQty(ctx context.Context, buyerID, lineID uint, qty int) error
		RemoveLine(ctx context.Context, buyerID, lineID uint) error
		ClearCart(ctx context.Context, buyerID uint) error
		CartCount(ctx context.Context, buyerID uint) (int64, error)
	}

	CartAddRequest struct {
		MenuID uint   `json:"menu_id" validate:"required"`
		Qty    int    `json:"qty" validate:"required,gt=0"`
		Notes  string `json:"notes,omitempty"`
	}

	CartQtyRequest struct {
		Qty int `json:"qty"`
	}
)

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		validate:    validator.New(),
		cartService: cartService,
		timeout:     10 * time.Second,
	}
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	var request CartAddRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation cart input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	line, err := h.cartService.AddToCart(ctx, buyerID, request.MenuID, request.Qty, request.Notes)
	if err != nil {
		logger.Error("Failed to add to cart", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(line))
}

func (h *CartHandler) GetCart(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	groups, err := h.cartService.GetCart(ctx, buyerID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(groups))
}

// UpdateQty changes a cart line quantity. Zero or negative removes the line.
func (h *CartHandler) UpdateQty(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	lineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart line id"})
	}

	var request CartQtyRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.UpdateQty(ctx, buyerID, uint(lineID), request.Qty); err != nil {
		logger.Error("Failed to update cart line", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Cart updated successfully"))
}

func (h *CartHandler) RemoveLine(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	lineID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart line id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.RemoveLine(ctx, buyerID, uint(lineID)); err != nil {
		logger.Error("Failed to remove cart line", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Cart line removed successfully"))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.ClearCart(ctx, buyerID); err != nil {
		logger.Error("Failed to clear cart", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Cart cleared successfully"))
}

func (h *CartHandler) CartCount(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.cartService.CartCount(ctx, buyerID)
	if err != nil {
		logger.Error("Failed to count cart items", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]int64{"count": count}))
}
