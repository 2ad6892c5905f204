package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"gorm.io/gorm"
)

// OrderFaker builds a completed demo order with one to three snapshot lines.
// Line slugs are derived from fake product names the same way the store API
// mints them.
func OrderFaker(db *gorm.DB, user *models.User, address *models.Address) *models.Order {
	orderID := uuid.New().String()
	lineCount := rand.Intn(3) + 1

	items := make([]models.OrderItem, 0, lineCount)
	base := decimal.Zero
	for i := 0; i < lineCount; i++ {
		name := faker.Word() + " " + faker.Word()
		qty := rand.Intn(3) + 1
		price := decimal.NewFromInt(int64(rand.Intn(90)+10) * 100)
		subtotal := price.Mul(decimal.NewFromInt(int64(qty)))
		base = base.Add(subtotal)

		items = append(items, models.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			ProductSlug: slug.Make(name),
			ProductName: name,
			Qty:         qty,
			Price:       price,
			Subtotal:    subtotal,
		})
	}

	tax := calc.CalculateTax(base)
	shipping := decimal.NewFromInt(int64(rand.Intn(10)+1) * 10)

	return &models.Order{
		ID:              orderID,
		UserID:          user.ID,
		OrderCode:       fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8]),
		OrderDate:       time.Now().AddDate(0, 0, -rand.Intn(60)),
		OrderItems:      items,
		BaseTotalPrice:  base,
		TaxPercent:      calc.GetTaxPercent(),
		TaxAmount:       tax,
		ShippingCost:    shipping,
		GrandTotal:      calc.CalculateGrandTotal(base, tax, decimal.Zero, shipping),
		ShippingName:    address.Name,
		ShippingAddress: address.Address1,
		ShippingCity:    address.City,
		ShippingState:   address.State,
		ShippingPincode: address.Pincode,
		ShippingPhone:   address.Phone,
		PaymentStatus:   "Paid",
		Status:          models.OrderStatusCompleted,
	}
}
