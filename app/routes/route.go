package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"

	"github.com/velora-dev/go-storefront/app/configs"
	"github.com/velora-dev/go-storefront/app/handlers"
	"github.com/velora-dev/go-storefront/app/middlewares"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/images"
	"github.com/velora-dev/go-storefront/app/utils/sessions"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

// NewRouter wires repositories, services and handlers onto the mux router.
// The storefront pages share the session and cart-count middleware chain;
// account pages additionally require a login.
func NewRouter(db *gorm.DB, renderer *render.Render, settings themes.Settings, sessionStore sessions.SessionStore, keys *configs.SessionKeys) *mux.Router {
	userRepo := repositories.NewUserRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	catalog := services.NewStoreAPIClient(configs.LoadENV.STORE_API_BASE_URL, configs.LoadENV.STORE_API_KEY)
	location := services.NewLocationClient(configs.LoadENV.STORE_API_BASE_URL, configs.LoadENV.STORE_API_KEY)

	cartService := services.NewCartService(cartRepo, cartItemRepo, catalog)
	checkoutService := services.NewCheckoutService(db, cartRepo, cartItemRepo, userRepo, addressRepo, orderRepo, orderItemRepo, paymentRepo, catalog)
	paymentService := services.NewPaymentService(orderRepo, paymentRepo)

	resolver := images.Resolver{
		OriginBase: configs.LoadENV.ASSET_BASE_URL,
		CDNBase:    configs.LoadENV.ASSET_CDN_BASE_URL,
	}

	homeHandler := handlers.NewHomeHandler(catalog, renderer, settings, resolver)
	productHandler := handlers.NewProductHandler(catalog, renderer, settings, resolver)
	cartHandler := handlers.NewCartHandler(cartService, renderer, settings)
	authHandler := handlers.NewAuthHandler(userRepo, cartRepo, sessionStore, renderer, settings)
	addressHandler := handlers.NewAddressHandler(addressRepo, location, renderer, settings)
	orderHandler := handlers.NewOrderHandler(orderRepo, addressRepo, cartService, checkoutService, paymentService, renderer, settings)
	imageHandler := handlers.NewImageHandler(resolver, nil, renderer)

	router := mux.NewRouter()
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./assets"))))

	// the payment gateway posts here without a session or CSRF token
	router.HandleFunc("/payments/midtrans/notification", orderHandler.PaymentNotification).Methods("POST")

	store := router.NewRoute().Subrouter()
	store.Use(middlewares.SessionMiddleware(sessionStore, userRepo))
	store.Use(middlewares.CartCountMiddleware(cartRepo))
	store.Use(csrf.Protect(
		keys.AuthKey,
		csrf.Secure(configs.LoadENV.APP_ENV == "production"),
		csrf.Path("/"),
	))

	store.HandleFunc("/", homeHandler.Home).Methods("GET")
	store.HandleFunc("/products", productHandler.Products).Methods("GET")
	store.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")

	store.HandleFunc("/carts", cartHandler.GetCart).Methods("GET")
	store.HandleFunc("/carts/add", cartHandler.AddItemToCart).Methods("POST")
	store.HandleFunc("/carts/update", cartHandler.UpdateCartQty).Methods("POST")
	store.HandleFunc("/carts/remove", cartHandler.RemoveItemFromCart).Methods("POST")

	store.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	store.HandleFunc("/login", authHandler.Login).Methods("POST")
	store.HandleFunc("/register", authHandler.RegisterPage).Methods("GET")
	store.HandleFunc("/register", authHandler.Register).Methods("POST")
	store.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	store.HandleFunc("/api/images/presentation", imageHandler.Presentation).Methods("GET")
	store.HandleFunc("/api/locations/pincode", addressHandler.PincodeLookup).Methods("GET")

	store.HandleFunc("/checkout/finish", orderHandler.CheckoutFinish).Methods("GET")

	account := store.NewRoute().Subrouter()
	account.Use(middlewares.RequireLogin)

	account.HandleFunc("/addresses", addressHandler.ListAddresses).Methods("GET")
	account.HandleFunc("/addresses", addressHandler.CreateAddress).Methods("POST")
	account.HandleFunc("/addresses/{id}/primary", addressHandler.SetPrimaryAddress).Methods("POST")
	account.HandleFunc("/addresses/{id}/delete", addressHandler.DeleteAddress).Methods("POST")

	account.HandleFunc("/orders", orderHandler.ListOrders).Methods("GET")
	account.HandleFunc("/orders/{code}", orderHandler.OrderDetail).Methods("GET")

	account.HandleFunc("/checkout", orderHandler.CheckoutPage).Methods("GET")
	account.HandleFunc("/checkout", orderHandler.ProcessCheckout).Methods("POST")

	return router
}
