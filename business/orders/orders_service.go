package orders

import (
	"context"
	"fmt"
	"time"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
	"kantinkampus/pkg/metrics"

	"github.com/google/uuid"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateFromCart(ctx context.Context, buyerID uint, orders []domain.Order) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindByBuyer(ctx context.Context, buyerID uint, status string) ([]domain.Order, error)
	FindBySeller(ctx context.Context, sellerID uint, status string) ([]domain.Order, error)
	FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
	UpdateLifecycle(ctx context.Context, order *domain.Order) error
}

// CartRepository contract interface
type CartRepository interface {
	FindItems(ctx context.Context, buyerID uint) ([]domain.CartItem, error)
}

// StandRepository contract interface
type StandRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Stand, error)
	FindBySeller(ctx context.Context, sellerID uint) (domain.Stand, error)
}

// Notifier records a notification for a user. Delivery is best effort;
// a failed notification never fails the transition that caused it.
type Notifier interface {
	Notify(ctx context.Context, userID uint, notifType, title, message string, orderID uint)
}

type ordersService struct {
	ordersRepo OrdersRepository
	cartRepo   CartRepository
	standRepo  StandRepository
	notifier   Notifier
}

func NewOrdersService(ordersRepo OrdersRepository, cartRepo CartRepository, standRepo StandRepository, notifier Notifier) *ordersService {
	return &ordersService{
		ordersRepo: ordersRepo,
		cartRepo:   cartRepo,
		standRepo:  standRepo,
		notifier:   notifier,
	}
}

// Checkout converts the buyer's cart into one order per stand, snapshotting
// menu prices into line items, and clears the cart in the same atomic unit.
// An empty cart yields zero orders and has no side effects. Sibling orders
// share a checkout id.
func (s *ordersService) Checkout(ctx context.Context, buyerID uint, paymentMethod, buyerNotes string) ([]domain.Order, error) {
	start := time.Now()

	items, err := s.cartRepo.FindItems(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	checkoutID := uuid.NewString()
	groups := domain.GroupCartByStand(items)

	orders := make([]domain.Order, 0, len(groups))
	for _, group := range groups {
		order := domain.Order{
			CheckoutID:    checkoutID,
			BuyerID:       buyerID,
			StandID:       group.StandID,
			Total:         group.Total,
			Status:        domain.OrderPendingPayment,
			PaymentMethod: paymentMethod,
			PaymentStatus: domain.PaymentUnpaid,
			BuyerNotes:    buyerNotes,
		}

		for _, item := range group.Items {
			order.Items = append(order.Items, domain.OrderItem{
				MenuID:    item.MenuID,
				Qty:       item.Qty,
				UnitPrice: item.Price,
				Subtotal:  item.Subtotal(),
			})
		}

		orders = append(orders, order)
	}

	created, err := s.ordersRepo.CreateFromCart(ctx, buyerID, orders)
	if err != nil {
		logger.Error("Failed to create orders from cart", err)
		return nil, err
	}

	metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	metrics.OrdersCreated.Add(float64(len(created)))
	logger.Info("Checkout completed", "buyer_id", buyerID, "orders", len(created), "checkout_id", checkoutID)

	return created, nil
}

// SubmitPaymentProof is the only buyer-triggered transition:
// pending_payment -> pending_verification. The stand owner is notified.
func (s *ordersService) SubmitPaymentProof(ctx context.Context, orderID, buyerID uint, proofURL string) (domain.Order, error) {
	if proofURL == "" {
		return domain.Order{}, fmt.Errorf("%w: payment proof is required", domain.ErrValidation)
	}

	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if order.BuyerID != buyerID {
		return domain.Order{}, fmt.Errorf("%w: order belongs to another buyer", domain.ErrForbidden)
	}

	if !domain.CanTransition(order.Status, domain.OrderPendingVerification) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderPendingVerification)
	}

	order.Status = domain.OrderPendingVerification
	order.PaymentStatus = domain.PaymentPending
	order.PaymentProof = &proofURL

	if err := s.ordersRepo.UpdateLifecycle(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	metrics.StatusTransitions.WithLabelValues(order.Status).Inc()

	stand, err := s.standRepo.FindByID(ctx, order.StandID)
	if err != nil {
		logger.Error("Failed to resolve stand for order notification", err)
	} else {
		s.notifier.Notify(ctx, stand.SellerID, domain.NotifOrderPlaced,
			"New order received",
			"A new order is waiting for payment verification",
			order.ID)
	}

	return order, nil
}

// VerifyPayment is the seller's verdict on a submitted payment proof:
// accept moves the order to verified, reject cancels it with a reason.
func (s *ordersService) VerifyPayment(ctx context.Context, orderID, sellerID uint, accepted bool, notes string) (domain.Order, error) {
	order, err := s.sellerOrder(ctx, orderID, sellerID)
	if err != nil {
		return domain.Order{}, err
	}

	target := domain.OrderVerified
	if !accepted {
		target = domain.OrderCancelled
	}

	if order.Status != domain.OrderPendingVerification || !domain.CanTransition(order.Status, target) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, target)
	}

	order.Status = target
	order.SellerNotes = notes
	if accepted {
		order.PaymentStatus = domain.PaymentVerified
	} else {
		order.PaymentStatus = domain.PaymentRejected
	}

	if err := s.ordersRepo.UpdateLifecycle(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	metrics.StatusTransitions.WithLabelValues(order.Status).Inc()

	if accepted {
		s.notifier.Notify(ctx, order.BuyerID, domain.NotifPaymentVerified,
			"Payment accepted",
			"Your order is being processed",
			order.ID)
	} else {
		message := "Payment proof was not valid"
		if notes != "" {
			message += ". " + notes
		}
		s.notifier.Notify(ctx, order.BuyerID, domain.NotifPaymentRejected,
			"Payment rejected", message, order.ID)
	}

	return order, nil
}

var statusNotifications = map[string]struct {
	notifType string
	title     string
	message   string
}{
	domain.OrderCooking:   {domain.NotifOrderCooking, "Order is being cooked", "Your order is being prepared"},
	domain.OrderReady:     {domain.NotifOrderReady, "Order ready", "Your order is ready for pickup"},
	domain.OrderCompleted: {domain.NotifOrderCompleted, "Order completed", "Thank you for ordering!"},
}

// AdvanceStatus moves an order forward along verified -> cooking -> ready
// -> completed. Anything else is rejected.
func (s *ordersService) AdvanceStatus(ctx context.Context, orderID, sellerID uint, status string) (domain.Order, error) {
	notif, ok := statusNotifications[status]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: cannot set status %q directly", domain.ErrInvalidTransition, status)
	}

	order, err := s.sellerOrder(ctx, orderID, sellerID)
	if err != nil {
		return domain.Order{}, err
	}

	if !domain.CanTransition(order.Status, status) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}

	order.Status = status

	if err := s.ordersRepo.UpdateLifecycle(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	metrics.StatusTransitions.WithLabelValues(order.Status).Inc()

	s.notifier.Notify(ctx, order.BuyerID, notif.notifType, notif.title, notif.message, order.ID)

	return order, nil
}

// CancelOrder is seller-only and requires a reason. Valid from
// pending_verification, verified, cooking and ready.
func (s *ordersService) CancelOrder(ctx context.Context, orderID, sellerID uint, reason string) (domain.Order, error) {
	if reason == "" {
		return domain.Order{}, fmt.Errorf("%w: cancellation reason is required", domain.ErrValidation)
	}

	order, err := s.sellerOrder(ctx, orderID, sellerID)
	if err != nil {
		return domain.Order{}, err
	}

	if !domain.CanTransition(order.Status, domain.OrderCancelled) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderCancelled)
	}

	order.Status = domain.OrderCancelled
	order.SellerNotes = reason

	if err := s.ordersRepo.UpdateLifecycle(ctx, &order); err != nil {
		return domain.Order{}, err
	}
	metrics.StatusTransitions.WithLabelValues(order.Status).Inc()

	s.notifier.Notify(ctx, order.BuyerID, domain.NotifOrderCancelled,
		"Order cancelled",
		"The seller cancelled your order. Reason: "+reason,
		order.ID)

	return order, nil
}

func (s *ordersService) GetOrdersForBuyer(ctx context.Context, buyerID uint, status string) ([]domain.Order, error) {
	return s.ordersRepo.FindByBuyer(ctx, buyerID, status)
}

func (s *ordersService) GetOrdersForSeller(ctx context.Context, sellerID uint, status string) ([]domain.Order, error) {
	return s.ordersRepo.FindBySeller(ctx, sellerID, status)
}

// GetOrder returns one order with its line items, visible only to its
// buyer or the seller of its stand.
func (s *ordersService) GetOrder(ctx context.Context, orderID, userID uint, role string) (domain.Order, error) {
	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	switch role {
	case domain.RoleBuyer:
		if order.BuyerID != userID {
			return domain.Order{}, fmt.Errorf("%w: order belongs to another buyer", domain.ErrForbidden)
		}
	case domain.RoleSeller:
		stand, err := s.standRepo.FindByID(ctx, order.StandID)
		if err != nil {
			return domain.Order{}, err
		}
		if stand.SellerID != userID {
			return domain.Order{}, fmt.Errorf("%w: order belongs to another stand", domain.ErrForbidden)
		}
	default:
		return domain.Order{}, domain.ErrForbidden
	}

	items, err := s.ordersRepo.FindItems(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

// sellerOrder loads an order and checks it belongs to the seller's stand.
func (s *ordersService) sellerOrder(ctx context.Context, orderID, sellerID uint) (domain.Order, error) {
	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	stand, err := s.standRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return domain.Order{}, err
	}

	if order.StandID != stand.ID {
		return domain.Order{}, fmt.Errorf("%w: order belongs to another stand", domain.ErrForbidden)
	}

	return order, nil
}
