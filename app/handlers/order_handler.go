package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/breadcrumb"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

type OrderHandler struct {
	orderRepo       repositories.OrderRepository
	addressRepo     repositories.AddressRepository
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	paymentService  *services.PaymentService
	render          *render.Render
	settings        themes.Settings
}

func NewOrderHandler(
	orderRepo repositories.OrderRepository,
	addressRepo repositories.AddressRepository,
	cartService *services.CartService,
	checkoutService *services.CheckoutService,
	paymentService *services.PaymentService,
	r *render.Render,
	settings themes.Settings,
) *OrderHandler {
	return &OrderHandler{
		orderRepo:       orderRepo,
		addressRepo:     addressRepo,
		cartService:     cartService,
		checkoutService: checkoutService,
		paymentService:  paymentService,
		render:          r,
		settings:        settings,
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 10
	offset := (page - 1) * limit

	orders, total, err := h.orderRepo.FindByUserID(r.Context(), user.ID, limit, offset)
	if err != nil {
		log.Printf("OrderHandler.ListOrders: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":       "My Orders",
		"Orders":      orders,
		"CurrentPage": page,
		"TotalPages":  int((total + int64(limit) - 1) / int64(limit)),
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Orders", URL: "/orders"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "orders", data)
}

func (h *OrderHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	user := helpers.CurrentUser(r)

	order, err := h.orderRepo.FindByCode(r.Context(), code)
	if err != nil {
		log.Printf("OrderHandler.OrderDetail: %v", err)
		http.Error(w, "Failed to load order", http.StatusInternalServerError)
		return
	}
	if order == nil || order.UserID != user.ID {
		http.NotFound(w, r)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title": "Order " + order.OrderCode,
		"Order": order,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Orders", URL: "/orders"},
			{Name: order.OrderCode, URL: "/orders/" + order.OrderCode},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "order_detail", data)
}

func (h *OrderHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)
	cartID := helpers.CartID(r)

	cart, err := h.cartService.GetCart(r.Context(), cartID)
	if err != nil {
		log.Printf("OrderHandler.CheckoutPage: %v", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}
	if len(cart.CartItems) == 0 {
		redirectWithMessage(w, r, "/carts", "Your cart is empty", "error")
		return
	}

	addresses, err := h.addressRepo.FindAddressesByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("OrderHandler.CheckoutPage: %v", err)
		http.Error(w, "Failed to load addresses", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":     "Checkout",
		"Cart":      cart,
		"Addresses": addresses,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Cart", URL: "/carts"},
			{Name: "Checkout", URL: "/checkout"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "checkout", data)
}

func (h *OrderHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	addressID := r.FormValue("address_id")
	if addressID == "" {
		redirectWithMessage(w, r, "/checkout", "Please choose a shipping address", "error")
		return
	}

	shippingCost := decimal.Zero
	if raw := r.FormValue("shipping_cost"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			redirectWithMessage(w, r, "/checkout", "Invalid shipping cost", "error")
			return
		}
		shippingCost = parsed
	}

	user := helpers.CurrentUser(r)
	cartID := helpers.CartID(r)

	order, redirectURL, err := h.checkoutService.ProcessCheckout(r.Context(), user.ID, cartID, addressID, shippingCost)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientStock) || errors.Is(err, services.ErrProductUnavailable) {
			redirectWithMessage(w, r, "/carts", "Some items in your cart are no longer available", "error")
			return
		}
		log.Printf("OrderHandler.ProcessCheckout: %v", err)
		redirectWithMessage(w, r, "/checkout", "Checkout failed, please try again", "error")
		return
	}

	log.Printf("OrderHandler.ProcessCheckout: order %s created, redirecting to payment", order.OrderCode)
	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

// CheckoutFinish is where the payment gateway sends the shopper back after
// the hosted payment page.
func (h *OrderHandler) CheckoutFinish(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("order_code")
	order, err := h.orderRepo.FindByCode(r.Context(), code)
	if err != nil || order == nil {
		http.NotFound(w, r)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title": "Order Placed",
		"Order": order,
	})
	_ = h.render.HTML(w, http.StatusOK, "checkout_finish", data)
}

// PaymentNotification is the Midtrans server-to-server webhook.
func (h *OrderHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	var payload services.MidtransNotificationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.paymentService.HandleNotification(r.Context(), payload); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		log.Printf("OrderHandler.PaymentNotification: %v", err)
		http.Error(w, "Failed to process notification", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
