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
	ReviewHandler struct {
		validate      *validator.Validate
		reviewService ReviewService
		timeout       time.Duration
	}

	ReviewService interface {
		AddReview(ctx context.Context, buyerID, menuID uint, orderID *uint, rating int, comment string) (domain.Review, error)
		GetMenuReviews(ctx context.Context, menuID uint) ([]domain.Review, error)
	}

	ReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment,omitempty"`
		OrderID *uint  `json:"order_id,omitempty"`
	}
)

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		validate:      validator.New(),
		reviewService: reviewService,
		timeout:       10 * time.Second,
	}
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	buyerID := c.Get("user_id").(uint)

	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	var request ReviewRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation review input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review, err := h.reviewService.AddReview(ctx, buyerID, uint(menuID), request.OrderID, request.Rating, request.Comment)
	if err != nil {
		logger.Error("Failed to add review", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(review))
}

func (h *ReviewHandler) GetMenuReviews(c echo.Context) error {
	menuID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetMenuReviews(ctx, uint(menuID))
	if err != nil {
		logger.Error("Failed to get menu reviews", err)
		return c.JSON(errStatus(err), errBody(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}
