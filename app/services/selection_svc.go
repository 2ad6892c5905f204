package services

import (
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/utils/variants"
)

// VariantNotify is the upward channel a selection controller reports
// through: the owning view hears about the computed default and about every
// explicit user choice.
type VariantNotify func(models.Variant)

// SelectionController owns the single source of truth for which variant of
// one rendered product is selected. One controller per product slot; the
// owning view calls Settle exactly once after its own initialization, which
// replaces the old timer-based debounce dance between parent and child.
type SelectionController struct {
	product models.Product
	mode    models.AccountMode
	notify  VariantNotify

	current         *models.Variant
	userChosen      bool
	defaultNotified bool
	settled         bool
	settledID       int64
}

func NewSelectionController(p models.Product, mode models.AccountMode, notify VariantNotify) *SelectionController {
	return &SelectionController{product: p, mode: mode, notify: notify}
}

// Reset re-points the controller at a product. A different product identity
// clears the notification guard, the settled baseline, and any selection, so
// nothing leaks across products rendered by a recycled slot. The same
// identity only refreshes the product data.
func (c *SelectionController) Reset(p models.Product) {
	if p.ID != c.product.ID {
		c.current = nil
		c.userChosen = false
		c.defaultNotified = false
		c.settled = false
		c.settledID = 0
	}
	c.product = p
}

// Settle is the one-shot the owning view invokes once it has finished its
// own initialization (including restoring any saved selection). In retail
// mode it computes and reports the default variant at most once per product
// identity. In wholesale mode it never picks a default; it only captures the
// current selection as the settled baseline, so later drift counts as a
// genuine user action.
func (c *SelectionController) Settle() {
	if c.mode == models.AccountWholesale {
		if !c.settled {
			c.settled = true
			if c.current != nil {
				c.settledID = c.current.ID
			}
		}
		return
	}

	if c.defaultNotified || c.current != nil {
		return
	}
	d := variants.Default(c.product, c.mode)
	if d == nil {
		return
	}
	c.current = d
	c.defaultNotified = true
	if c.notify != nil {
		c.notify(*d)
	}
}

// Select applies an explicit user choice. Out-of-stock chips and variants
// that do not belong to the product are rejected.
func (c *SelectionController) Select(v models.Variant) bool {
	if !v.InStock() || c.product.FindVariant(v.ID) == nil {
		return false
	}
	c.current = &v
	c.userChosen = true
	if c.notify != nil {
		c.notify(v)
	}
	return true
}

// Restore applies a selection carried over from the owning view's saved
// state. Before Settle it does not count as a user action; afterwards a
// changed variant id does.
func (c *SelectionController) Restore(v models.Variant) {
	if c.product.FindVariant(v.ID) == nil {
		return
	}
	if c.settled && v.ID != c.settledID {
		c.userChosen = true
	}
	c.current = &v
}

// Current returns the effective selected variant: the explicit selection if
// any, otherwise the computed retail default, otherwise nil. Wholesale mode
// has no automatic fallback.
func (c *SelectionController) Current() *models.Variant {
	if c.current != nil {
		return c.current
	}
	return variants.Default(c.product, c.mode)
}

// UserChosen reports whether the shopper made an explicit choice.
func (c *SelectionController) UserChosen() bool {
	return c.userChosen
}

// RequiresExplicitChoice reports whether a cart action must be intercepted
// by the forced-selection modal: wholesale mode, variants present, no
// explicit choice yet.
func (c *SelectionController) RequiresExplicitChoice() bool {
	return c.mode == models.AccountWholesale && c.product.HasVariants() && !c.userChosen
}
