package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/breadcrumb"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

type CartHandler struct {
	cartService *services.CartService
	render      *render.Render
	settings    themes.Settings
}

func NewCartHandler(cartService *services.CartService, r *render.Render, settings themes.Settings) *CartHandler {
	return &CartHandler{cartService: cartService, render: r, settings: settings}
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, message, status string) {
	v := url.Values{}
	v.Set("message", message)
	v.Set("status", status)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := helpers.CartID(r)
	cart, err := h.cartService.GetCart(r.Context(), cartID)
	if err != nil {
		log.Printf("CartHandler.GetCart: failed to load cart %s: %v", cartID, err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title": "Shopping Cart",
		"Cart":  cart,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Cart", URL: "/carts"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

func (h *CartHandler) AddItemToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	productSlug := r.FormValue("product_slug")
	if productSlug == "" {
		http.Error(w, "Missing product", http.StatusBadRequest)
		return
	}

	qty, _ := strconv.Atoi(r.FormValue("qty"))
	var variantID *int64
	if raw := r.FormValue("variant_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			variantID = &id
		}
	}

	cartID := helpers.CartID(r)
	mode := helpers.CurrentMode(r)

	_, err := h.cartService.AddItem(r.Context(), cartID, productSlug, variantID, qty, mode)
	switch {
	case errors.Is(err, services.ErrVariantRequired):
		// back to the product page with the forced-selection modal armed
		http.Redirect(w, r, "/products/"+productSlug+"?select_size=1", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrInsufficientStock):
		redirectWithMessage(w, r, "/products/"+productSlug, "Not enough stock available", "error")
		return
	case errors.Is(err, services.ErrProductUnavailable):
		redirectWithMessage(w, r, "/products/"+productSlug, "This product is currently unavailable", "error")
		return
	case err != nil:
		log.Printf("CartHandler.AddItemToCart: %v", err)
		redirectWithMessage(w, r, "/products/"+productSlug, "Failed to add product to cart", "error")
		return
	}

	if r.FormValue("buy_now") == "1" {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}
	redirectWithMessage(w, r, "/carts", "Product added to cart", "success")
}

func (h *CartHandler) UpdateCartQty(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	itemID := r.FormValue("item_id")
	qty, err := strconv.Atoi(r.FormValue("qty"))
	if itemID == "" || err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	cartID := helpers.CartID(r)
	if err := h.cartService.UpdateQty(r.Context(), cartID, itemID, qty); err != nil {
		if errors.Is(err, services.ErrInsufficientStock) {
			redirectWithMessage(w, r, "/carts", "Not enough stock for the requested quantity", "error")
			return
		}
		log.Printf("CartHandler.UpdateCartQty: %v", err)
		redirectWithMessage(w, r, "/carts", "Failed to update cart", "error")
		return
	}
	http.Redirect(w, r, "/carts", http.StatusSeeOther)
}

func (h *CartHandler) RemoveItemFromCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	itemID := r.FormValue("item_id")
	if itemID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	cartID := helpers.CartID(r)
	if err := h.cartService.RemoveItem(r.Context(), cartID, itemID); err != nil {
		log.Printf("CartHandler.RemoveItemFromCart: %v", err)
		redirectWithMessage(w, r, "/carts", "Failed to remove item", "error")
		return
	}
	redirectWithMessage(w, r, "/carts", "Item removed from cart", "success")
}
