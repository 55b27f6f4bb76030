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
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		Checkout(ctx context.Context, buyerID uint, paymentMethod, buyerNotes string) ([]domain.Order, error)
		SubmitPaymentProof(ctx context.Context, orderID, buyerID uint, proofURL string) (domain.Order, error)
		VerifyPayment(ctx context.Context, orderID, sellerID uint, accepted bool, notes string) (domain.Order, error)
		AdvanceStatus(ctx context.Context, orderID, sellerID uint, status string) (domain.Order, error)
		CancelOrder(ctx context.Context, orderID, sellerID uint, reason string) (domain.Order, error)
		GetOrdersForBuyer(ctx context.Context, buyerID uint, status string) ([]domain.Order, error)
		GetOrdersForSeller(ctx context.Context, sellerID uint, status string) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID, userID uint, role string) (domain.Order, error)
	}

	CheckoutRequest struct {
		PaymentMethod string `json:"payment_method" validate:"required,oneof=transfer qris cash"`
		Notes         string `json:"notes,omitempty"`
	}

	PaymentProofRequest struct {
		ProofURL string `json:"proof_url" validate:"required"`
	}

	VerifyPaymentRequest struct {
		Accepted bool   `json:"accepted"`
		Notes    string `json:"notes,omitempty"`
	}

	StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=cooking ready completed"`
	}

	CancelRequest struct {
		Reason string `json:"reason" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

// Checkout turns the buyer's cart into one order per stand.
func (h *OrdersHandler) Checkout(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	var request CheckoutRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation checkout input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.Checkout(ctx, buyerID, request.PaymentMethod, request.Notes)
	if err != nil {
		logger.Error("Failed to checkout cart", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	if len(orders) == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "cart is empty"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(orders))
}

func (h *OrdersHandler) GetBuyerOrders(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrdersForBuyer(ctx, buyerID, c.QueryParam("status"))
	if err != nil {
		logger.Error("Failed to get buyer orders", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetSellerOrders(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetOrdersForSeller(ctx, sellerID, c.QueryParam("status"))
	if err != nil {
		logger.Error("Failed to get seller orders", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)
	role := c.Get("role").(string)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, uint(orderID), userID, role)
	if err != nil {
		logger.Error("Failed to get order", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) SubmitPaymentProof(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request PaymentProofRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation payment proof input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.SubmitPaymentProof(ctx, uint(orderID), buyerID, request.ProofURL)
	if err != nil {
		logger.Error("Failed to submit payment proof", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) VerifyPayment(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request VerifyPaymentRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.VerifyPayment(ctx, uint(orderID), sellerID, request.Accepted, request.Notes)
	if err != nil {
		logger.Error("Failed to verify payment", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request StatusRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation status input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.AdvanceStatus(ctx, uint(orderID), sellerID, request.Status)
	if err != nil {
		logger.Error("Failed to update order status", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) CancelOrder(c echo.Context) error {
	sellerID := c.Get("user_id").(uint)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request CancelRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation cancel input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CancelOrder(ctx, uint(orderID), sellerID, request.Reason)
	if err != nil {
		logger.Error("Failed to cancel order", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
