package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/repositories"
)

var ErrOrderNotFound = errors.New("order not found")

// MidtransNotificationPayload is the webhook body Midtrans posts on every
// transaction status change.
type MidtransNotificationPayload struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	Currency          string `json:"currency"`
}

type PaymentService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepositoryImpl
}

func NewPaymentService(orderRepo repositories.OrderRepository, paymentRepo repositories.PaymentRepositoryImpl) *PaymentService {
	return &PaymentService{orderRepo: orderRepo, paymentRepo: paymentRepo}
}

// HandleNotification maps a Midtrans transaction status onto the local
// order/payment records.
func (s *PaymentService) HandleNotification(ctx context.Context, payload MidtransNotificationPayload) error {
	order, err := s.orderRepo.FindByCode(ctx, payload.OrderID)
	if err != nil {
		return fmt.Errorf("failed to look up order %s: %w", payload.OrderID, err)
	}
	if order == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, payload.OrderID)
	}

	orderStatus := order.Status
	paymentStatus := order.PaymentStatus

	switch payload.TransactionStatus {
	case "capture", "settlement":
		if payload.FraudStatus == "challenge" {
			paymentStatus = "Challenge"
		} else {
			paymentStatus = "Paid"
			orderStatus = models.OrderStatusProcessing
		}
	case "pending":
		paymentStatus = "Pending"
	case "deny":
		paymentStatus = "Denied"
		orderStatus = models.OrderStatusFailed
	case "cancel":
		paymentStatus = "Cancelled"
		orderStatus = models.OrderStatusCancelled
	case "expire":
		paymentStatus = "Expired"
		orderStatus = models.OrderStatusFailed
	case "refund":
		paymentStatus = "Refunded"
		orderStatus = models.OrderStatusRefunded
	default:
		log.Printf("PaymentService: unhandled transaction status %q for order %s", payload.TransactionStatus, payload.OrderID)
		return nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, orderStatus, paymentStatus); err != nil {
		return fmt.Errorf("failed to update order %s status: %w", order.ID, err)
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to look up payment for order %s: %w", order.ID, err)
	}
	if payment != nil {
		if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, paymentStatus); err != nil {
			return fmt.Errorf("failed to update payment %s status: %w", payment.ID, err)
		}
	}
	return nil
}
