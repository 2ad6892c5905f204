package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/configs"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db            *gorm.DB
	cartRepo      repositories.CartRepositoryImpl
	cartItemRepo  repositories.CartItemRepositoryImpl
	userRepo      repositories.UserRepositoryImpl
	addressRepo   repositories.AddressRepository
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	paymentRepo   repositories.PaymentRepositoryImpl
	catalog       StoreAPIClient
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	addressRepo repositories.AddressRepository,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	paymentRepo repositories.PaymentRepositoryImpl,
	catalog StoreAPIClient,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cartRepo:      cartRepo,
		cartItemRepo:  cartItemRepo,
		userRepo:      userRepo,
		addressRepo:   addressRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		catalog:       catalog,
	}
}

// ProcessCheckout snapshots the cart into an order, initiates a Midtrans
// Snap transaction, and returns the order plus the payment redirect URL.
// Every line is re-validated against the live catalog before committing.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, userID, cartID, addressID string, shippingCost decimal.Decimal) (*models.Order, string, error) {
	cart, err := s.cartRepo.GetCartWithItems(ctx, cartID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get cart with items: %w", err)
	}
	if cart == nil || len(cart.CartItems) == 0 {
		return nil, "", errors.New("cart is empty or not found")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, "", errors.New("user not found")
	}

	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get address: %w", err)
	}
	if address == nil {
		return nil, "", errors.New("address not found")
	}

	orderItems := make([]models.OrderItem, 0, len(cart.CartItems))
	for _, cartItem := range cart.CartItems {
		product, err := s.catalog.GetProductDetail(ctx, cartItem.ProductSlug)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch product %s: %w", cartItem.ProductSlug, err)
		}
		var selected *models.Variant
		if cartItem.VariantID != nil {
			selected = product.FindVariant(*cartItem.VariantID)
		}
		if avail := calc.Availability(*product, selected); avail < cartItem.Qty {
			return nil, "", fmt.Errorf("%w: product %q has %d available, requested %d", ErrInsufficientStock, product.Name, avail, cartItem.Qty)
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductSlug:  cartItem.ProductSlug,
			ProductName:  cartItem.ProductName,
			VariantID:    cartItem.VariantID,
			VariantLabel: cartItem.VariantLabel,
			Qty:          cartItem.Qty,
			Price:        cartItem.Price,
			Subtotal:     cartItem.Subtotal,
		})
	}

	orderCode := fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
	order := &models.Order{
		UserID:          userID,
		OrderCode:       orderCode,
		OrderDate:       time.Now(),
		BaseTotalPrice:  cart.BaseTotalPrice,
		TaxPercent:      cart.TaxPercent,
		TaxAmount:       cart.TaxAmount,
		DiscountAmount:  cart.DiscountAmount,
		ShippingCost:    shippingCost,
		GrandTotal:      cart.GrandTotal.Add(shippingCost).Round(2),
		ShippingName:    address.Name,
		ShippingAddress: address.Address1,
		ShippingCity:    address.City,
		ShippingState:   address.State,
		ShippingPincode: address.Pincode,
		ShippingPhone:   address.Phone,
		PaymentStatus:   "Pending",
		Status:          models.OrderStatusPending,
	}

	redirectURL := ""
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		snapResp, err := s.createSnapTransaction(order, orderItems, user, address)
		if err != nil {
			return err
		}
		redirectURL = snapResp.RedirectURL

		payment := &models.Payment{
			OrderID:     order.ID,
			Number:      order.OrderCode,
			Amount:      order.GrandTotal,
			Method:      "Midtrans Snap",
			Status:      "Pending",
			PaymentType: "Snap",
			Token:       snapResp.Token,
			RedirectURL: snapResp.RedirectURL,
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	if err := s.cartRepo.Clear(ctx, cartID); err != nil {
		log.Printf("CheckoutService: failed to clear cart %s after checkout: %v", cartID, err)
	}
	return order, redirectURL, nil
}

func (s *CheckoutService) createSnapTransaction(order *models.Order, items []models.OrderItem, user *models.User, address *models.Address) (*snap.Response, error) {
	itemDetails := make([]midtrans.ItemDetails, 0, len(items)+2)
	for _, item := range items {
		name := item.ProductName
		if item.VariantLabel != "" {
			name = fmt.Sprintf("%s (%s)", name, item.VariantLabel)
		}
		if len(name) > 50 {
			name = name[:50]
		}
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    item.ProductSlug,
			Name:  name,
			Price: item.Price.Round(0).IntPart(),
			Qty:   int32(item.Qty),
		})
	}
	if order.ShippingCost.IsPositive() {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "SHIPPING_FEE",
			Name:  "Shipping",
			Price: order.ShippingCost.Round(0).IntPart(),
			Qty:   1,
		})
	}

	// Snap requires item totals to match the gross amount exactly
	itemsTotal := decimal.Zero
	for _, item := range itemDetails {
		itemsTotal = itemsTotal.Add(decimal.NewFromInt(item.Price).Mul(decimal.NewFromInt32(item.Qty)))
	}
	gross := order.GrandTotal.Round(0)
	if diff := gross.Sub(itemsTotal); !diff.IsZero() {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    "ADJUSTMENT",
			Name:  "Rounding adjustment",
			Price: diff.IntPart(),
			Qty:   1,
		})
	}

	snapClient := configs.GetMidtransSnapClient()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderCode,
			GrossAmt: gross.IntPart(),
		},
		Items: &itemDetails,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FirstName,
			LName: user.LastName,
			Email: user.Email,
			Phone: user.Phone,
			ShipAddr: &midtrans.CustomerAddress{
				FName:    address.Name,
				Address:  address.Address1,
				City:     address.City,
				Postcode: address.Pincode,
				Phone:    address.Phone,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
		Callbacks: &snap.Callbacks{
			Finish: configs.GetAppBaseURL() + "/checkout/finish?order_code=" + order.OrderCode,
		},
	}

	snapResp, errMidtrans := snapClient.CreateTransaction(snapReq)
	if errMidtrans != nil {
		return nil, fmt.Errorf("failed to initiate Midtrans transaction: %w", errMidtrans)
	}
	if snapResp == nil || snapResp.RedirectURL == "" || snapResp.Token == "" {
		return nil, errors.New("midtrans transaction returned invalid response (missing redirect URL or token)")
	}
	return snapResp, nil
}
