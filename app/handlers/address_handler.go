package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/breadcrumb"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

type AddressHandler struct {
	addressRepo repositories.AddressRepository
	location    services.LocationClient
	render      *render.Render
	settings    themes.Settings
	validate    *validator.Validate
}

type addressForm struct {
	Name     string `validate:"required"`
	Address1 string `validate:"required"`
	Address2 string
	City     string `validate:"required"`
	State    string `validate:"required"`
	Pincode  string `validate:"required,len=6,numeric"`
	Phone    string `validate:"required,min=8"`
	Email    string `validate:"required,email"`
}

func NewAddressHandler(addressRepo repositories.AddressRepository, location services.LocationClient, r *render.Render, settings themes.Settings) *AddressHandler {
	return &AddressHandler{
		addressRepo: addressRepo,
		location:    location,
		render:      r,
		settings:    settings,
		validate:    validator.New(),
	}
}

func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)
	addresses, err := h.addressRepo.FindAddressesByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("AddressHandler.ListAddresses: %v", err)
		http.Error(w, "Failed to load addresses", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title":     "My Addresses",
		"Addresses": addresses,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Home", URL: "/"},
			{Name: "Addresses", URL: "/addresses"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "addresses", data)
}

func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := addressForm{
		Name:     r.FormValue("name"),
		Address1: r.FormValue("address1"),
		Address2: r.FormValue("address2"),
		City:     r.FormValue("city"),
		State:    r.FormValue("state"),
		Pincode:  r.FormValue("pincode"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
	}
	if err := h.validate.Struct(form); err != nil {
		redirectWithMessage(w, r, "/addresses", "Please fill in all address fields correctly", "error")
		return
	}

	user := helpers.CurrentUser(r)
	address := &models.Address{
		UserID:    user.ID,
		Name:      form.Name,
		Address1:  form.Address1,
		Address2:  form.Address2,
		City:      form.City,
		State:     form.State,
		Pincode:   form.Pincode,
		Phone:     form.Phone,
		Email:     form.Email,
		IsPrimary: r.FormValue("is_primary") == "1",
	}
	if err := h.addressRepo.CreateAddress(r.Context(), address); err != nil {
		log.Printf("AddressHandler.CreateAddress: %v", err)
		redirectWithMessage(w, r, "/addresses", "Failed to save address", "error")
		return
	}
	redirectWithMessage(w, r, "/addresses", "Address saved", "success")
}

func (h *AddressHandler) SetPrimaryAddress(w http.ResponseWriter, r *http.Request) {
	addressID := mux.Vars(r)["id"]
	user := helpers.CurrentUser(r)

	address, err := h.addressRepo.FindAddressByID(r.Context(), addressID)
	if err != nil || address == nil || address.UserID != user.ID {
		http.NotFound(w, r)
		return
	}

	if err := h.addressRepo.SetPrimaryAddress(r.Context(), user.ID, addressID); err != nil {
		log.Printf("AddressHandler.SetPrimaryAddress: %v", err)
		redirectWithMessage(w, r, "/addresses", "Failed to update primary address", "error")
		return
	}
	redirectWithMessage(w, r, "/addresses", "Primary address updated", "success")
}

func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID := mux.Vars(r)["id"]
	user := helpers.CurrentUser(r)

	address, err := h.addressRepo.FindAddressByID(r.Context(), addressID)
	if err != nil || address == nil || address.UserID != user.ID {
		http.NotFound(w, r)
		return
	}

	if err := h.addressRepo.DeleteAddress(r.Context(), addressID); err != nil {
		log.Printf("AddressHandler.DeleteAddress: %v", err)
		redirectWithMessage(w, r, "/addresses", "Failed to delete address", "error")
		return
	}
	redirectWithMessage(w, r, "/addresses", "Address deleted", "success")
}

// PincodeLookup proxies the store API's state/city suggestion so the address
// form can prefill both fields from a pincode.
func (h *AddressHandler) PincodeLookup(w http.ResponseWriter, r *http.Request) {
	pincode := r.URL.Query().Get("pincode")
	if len(pincode) != 6 {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "pincode must be 6 digits"})
		return
	}

	stateCity, err := h.location.StateCityByPincode(r.Context(), pincode)
	if err != nil {
		log.Printf("AddressHandler.PincodeLookup: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "lookup failed"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stateCity)
}
