package handlers

import (
	"log"
	"net/http"

	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/calc"
	"github.com/velora-dev/go-storefront/app/utils/images"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

type HomeHandler struct {
	catalog  services.StoreAPIClient
	render   *render.Render
	settings themes.Settings
	resolver images.Resolver
}

func NewHomeHandler(catalog services.StoreAPIClient, r *render.Render, settings themes.Settings, resolver images.Resolver) *HomeHandler {
	return &HomeHandler{catalog: catalog, render: r, settings: settings, resolver: resolver}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.catalog.FeaturedProducts(r.Context(), 8)
	if err != nil {
		// the home page still renders without the featured strip
		log.Printf("HomeHandler.Home: failed to fetch featured products: %v", err)
		featured = []models.Product{}
	}

	mode := helpers.CurrentMode(r)
	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":         h.settings.StoreName,
		"FeaturedCards": buildCards(featured, mode, calc.SurfaceGrid, h.resolver),
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
