package services

import (
	"context"
	"errors"
	"testing"

	"github.com/velora-dev/go-storefront/app/models"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders map[string]*models.Order // keyed by order code
}

func (f *fakeOrderRepo) Create(_ context.Context, _ *gorm.DB, order *models.Order) error {
	f.orders[order.OrderCode] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByCode(_ context.Context, code string) (*models.Order, error) {
	return f.orders[code], nil
}

func (f *fakeOrderRepo) FindByUserID(context.Context, string, int, int) ([]models.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, status int, paymentStatus string) error {
	for _, o := range f.orders {
		if o.ID == orderID {
			o.Status = status
			o.PaymentStatus = paymentStatus
			return nil
		}
	}
	return errors.New("order not found")
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment // keyed by order id
}

func (f *fakePaymentRepo) Create(_ context.Context, _ *gorm.DB, p *models.Payment) error {
	f.payments[p.OrderID] = p
	return nil
}

func (f *fakePaymentRepo) FindByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	return f.payments[orderID], nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, paymentID, status string) error {
	for _, p := range f.payments {
		if p.ID == paymentID {
			p.Status = status
			return nil
		}
	}
	return errors.New("payment not found")
}

func paymentFixture() (*PaymentService, *fakeOrderRepo, *fakePaymentRepo) {
	orders := &fakeOrderRepo{orders: map[string]*models.Order{
		"INV-1": {ID: "o1", OrderCode: "INV-1", Status: models.OrderStatusPending, PaymentStatus: "Pending"},
	}}
	payments := &fakePaymentRepo{payments: map[string]*models.Payment{
		"o1": {ID: "pay1", OrderID: "o1", Status: "Pending"},
	}}
	return NewPaymentService(orders, payments), orders, payments
}

func TestHandleNotificationSettlement(t *testing.T) {
	svc, orders, payments := paymentFixture()

	err := svc.HandleNotification(context.Background(), MidtransNotificationPayload{
		OrderID:           "INV-1",
		TransactionStatus: "settlement",
	})
	if err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}

	order := orders.orders["INV-1"]
	if order.Status != models.OrderStatusProcessing || order.PaymentStatus != "Paid" {
		t.Errorf("order after settlement = status %d, payment %q", order.Status, order.PaymentStatus)
	}
	if payments.payments["o1"].Status != "Paid" {
		t.Errorf("payment status = %q, want Paid", payments.payments["o1"].Status)
	}
}

func TestHandleNotificationStatusMapping(t *testing.T) {
	cases := []struct {
		transaction string
		wantOrder   int
		wantPayment string
	}{
		{"expire", models.OrderStatusFailed, "Expired"},
		{"cancel", models.OrderStatusCancelled, "Cancelled"},
		{"deny", models.OrderStatusFailed, "Denied"},
		{"refund", models.OrderStatusRefunded, "Refunded"},
	}
	for _, tc := range cases {
		svc, orders, _ := paymentFixture()
		err := svc.HandleNotification(context.Background(), MidtransNotificationPayload{
			OrderID:           "INV-1",
			TransactionStatus: tc.transaction,
		})
		if err != nil {
			t.Fatalf("%s: %v", tc.transaction, err)
		}
		order := orders.orders["INV-1"]
		if order.Status != tc.wantOrder || order.PaymentStatus != tc.wantPayment {
			t.Errorf("%s: got status %d payment %q, want %d %q",
				tc.transaction, order.Status, order.PaymentStatus, tc.wantOrder, tc.wantPayment)
		}
	}
}

func TestHandleNotificationFraudChallengeDoesNotAdvanceOrder(t *testing.T) {
	svc, orders, _ := paymentFixture()

	err := svc.HandleNotification(context.Background(), MidtransNotificationPayload{
		OrderID:           "INV-1",
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	})
	if err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	order := orders.orders["INV-1"]
	if order.Status != models.OrderStatusPending || order.PaymentStatus != "Challenge" {
		t.Errorf("challenged capture = status %d, payment %q", order.Status, order.PaymentStatus)
	}
}

func TestHandleNotificationUnknownOrder(t *testing.T) {
	svc, _, _ := paymentFixture()

	err := svc.HandleNotification(context.Background(), MidtransNotificationPayload{
		OrderID:           "INV-MISSING",
		TransactionStatus: "settlement",
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}
