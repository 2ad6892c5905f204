package services

import (
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"github.com/velora-dev/go-storefront/app/utils/variants"
)

// CartAction is the deferred add-to-cart / buy-now invocation the size modal
// holds onto until the shopper confirms a variant.
type CartAction func(models.Variant)

// SizeModal is the forced-selection dialog shown when a wholesale shopper
// attempts a cart action on a product with variants but no explicit choice.
// Transitions: closed -> open(no selection) -> open(selection) ->
// confirmed|cancelled -> closed. Open and close are idempotent.
type SizeModal struct {
	open     bool
	product  models.Product
	selected *models.Variant
	pending  CartAction
}

func NewSizeModal() *SizeModal {
	return &SizeModal{}
}

// Open arms the modal with the product and the action to run on confirm.
// Opening an already-open modal is a no-op.
func (m *SizeModal) Open(p models.Product, action CartAction) {
	if m.open {
		return
	}
	m.open = true
	m.product = p
	m.selected = nil
	m.pending = action
}

func (m *SizeModal) IsOpen() bool {
	return m.open
}

// Options lists the selectable variants: display order, in stock only.
func (m *SizeModal) Options() []models.Variant {
	if !m.open {
		return nil
	}
	sorted := variants.Sort(m.product.Variants)
	out := make([]models.Variant, 0, len(sorted))
	for _, v := range sorted {
		if v.InStock() {
			out = append(out, v)
		}
	}
	return out
}

// Select records the shopper's pick. Only in-stock variants belonging to the
// product are accepted, and only while the modal is open.
func (m *SizeModal) Select(v models.Variant) bool {
	if !m.open || !v.InStock() || m.product.FindVariant(v.ID) == nil {
		return false
	}
	m.selected = &v
	return true
}

func (m *SizeModal) Selected() *models.Variant {
	return m.selected
}

// Price returns the live price display for the current pick, falling back
// to the product's derived price while nothing is selected.
func (m *SizeModal) Price(surface calc.Surface) calc.PriceInfo {
	return calc.DerivePrice(m.product, m.selected, surface)
}

// CanConfirm reports whether the confirm button is enabled.
func (m *SizeModal) CanConfirm() bool {
	return m.open && m.selected != nil
}

// Confirm runs the deferred cart action with the chosen variant, then closes
// and clears. Returns false while confirm is disabled.
func (m *SizeModal) Confirm() bool {
	if !m.CanConfirm() {
		return false
	}
	action, chosen := m.pending, *m.selected
	m.reset()
	if action != nil {
		action(chosen)
	}
	return true
}

// Cancel closes without running anything. Cancelling a closed modal is a
// no-op.
func (m *SizeModal) Cancel() {
	if !m.open {
		return
	}
	m.reset()
}

func (m *SizeModal) reset() {
	m.open = false
	m.selected = nil
	m.pending = nil
	m.product = models.Product{}
}
