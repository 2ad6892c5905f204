package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/models/other"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/breadcrumb"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"github.com/velora-dev/go-storefront/app/utils/images"
	"github.com/velora-dev/go-storefront/app/utils/themes"
	"github.com/velora-dev/go-storefront/app/utils/variants"
)

type ProductHandler struct {
	catalog  services.StoreAPIClient
	render   *render.Render
	settings themes.Settings
	resolver images.Resolver
}

func NewProductHandler(catalog services.StoreAPIClient, r *render.Render, settings themes.Settings, resolver images.Resolver) *ProductHandler {
	return &ProductHandler{catalog: catalog, render: r, settings: settings, resolver: resolver}
}

// buildCard prepares one product for a card template: effective variant,
// derived price, purchasability, image URLs.
func buildCard(p models.Product, mode models.AccountMode, surface calc.Surface, resolver images.Resolver) other.ProductCard {
	selected := variants.Default(p, mode)
	price := calc.DerivePrice(p, selected, surface)
	res := resolver.Resolve(p.ImagePath)
	return other.ProductCard{
		Product:         p,
		Price:           price,
		DiscountPercent: calc.DiscountPercent(price),
		Purchasability:  calc.ResolvePurchasability(p, selected, price, mode),
		SelectedVariant: selected,
		ImageCDN:        res.CDN,
		ImageOrigin:     res.Origin,
	}
}

func buildCards(products []models.Product, mode models.AccountMode, surface calc.Surface, resolver images.Resolver) []other.ProductCard {
	cards := make([]other.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, buildCard(p, mode, surface, resolver))
	}
	return cards
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	categorySlug := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")
	view := r.URL.Query().Get("view")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 9
	offset := (page - 1) * limit

	var (
		products []models.Product
		total    int64
		err      error
	)
	switch {
	case query != "":
		products, total, err = h.catalog.SearchProducts(r.Context(), query, limit, offset)
	case categorySlug != "":
		products, total, err = h.catalog.ListByCategory(r.Context(), categorySlug, limit, offset)
	default:
		products, total, err = h.catalog.ListProducts(r.Context(), limit, offset)
	}
	if err != nil {
		log.Printf("ProductHandler.Products: failed to fetch products: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusBadGateway)
		return
	}

	// the list layout reads variant prices differently than the grid
	surface := calc.SurfaceGrid
	template := "products"
	if view == "list" {
		surface = calc.SurfaceList
		template = "products_list"
	}

	mode := helpers.CurrentMode(r)
	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":       "Products",
		"Cards":       buildCards(products, mode, surface, h.resolver),
		"CurrentPage": page,
		"TotalPages":  int((total + int64(limit) - 1) / int64(limit)),
		"Category":    categorySlug,
		"SearchQuery": query,
		"View":        view,
		"Breadcrumbs": breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, template, data)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productSlug := vars["slug"]
	if productSlug == "" {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalog.GetProductDetail(r.Context(), productSlug)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductHandler.ProductDetail: failed to fetch product %s: %v", productSlug, err)
		http.Error(w, "Failed to fetch product", http.StatusBadGateway)
		return
	}

	mode := helpers.CurrentMode(r)

	// selection is owned here; Settle runs once after any restore
	controller := services.NewSelectionController(*product, mode, nil)
	if variantID, err := strconv.ParseInt(r.URL.Query().Get("variant"), 10, 64); err == nil {
		if v := product.FindVariant(variantID); v != nil {
			controller.Restore(*v)
		}
	}
	controller.Settle()
	selected := controller.Current()

	price := calc.DerivePrice(*product, selected, calc.SurfaceGrid)
	purch := calc.ResolvePurchasability(*product, selected, price, mode)
	res := h.resolver.Resolve(product.ImagePath)

	// wholesale sessions that tried a cart action without choosing a size
	// land back here with the forced-selection modal armed
	sizeModal := services.NewSizeModal()
	if r.URL.Query().Get("select_size") == "1" && controller.RequiresExplicitChoice() {
		sizeModal.Open(*product, nil)
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Products", URL: "/products"},
		{Name: product.Name, URL: "/products/" + product.Slug},
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":            product.Name,
		"Product":          *product,
		"SortedVariants":   variants.Sort(product.Variants),
		"SelectedVariant":  selected,
		"Price":            price,
		"DiscountPercent":  calc.DiscountPercent(price),
		"Purchasability":   purch,
		"ImageCDN":         res.CDN,
		"ImageOrigin":      res.Origin,
		"ImageProgressive": res.Progressive(),
		"SizeModalOpen":    sizeModal.IsOpen(),
		"SizeModalOptions": sizeModal.Options(),
		"Breadcrumbs":      breadcrumbs,
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}
