package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/helpers"
	"github.com/velora-dev/go-storefront/app/models"
	"github.com/velora-dev/go-storefront/app/repositories"
	"github.com/velora-dev/go-storefront/app/utils/sessions"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

type AuthHandler struct {
	userRepo repositories.UserRepositoryImpl
	cartRepo repositories.CartRepositoryImpl
	session  sessions.SessionStore
	render   *render.Render
	settings themes.Settings
	validate *validator.Validate
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required,min=8"`
	Password  string `validate:"required,min=8"`
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, cartRepo repositories.CartRepositoryImpl, session sessions.SessionStore, r *render.Render, settings themes.Settings) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		cartRepo: cartRepo,
		session:  session,
		render:   r,
		settings: settings,
		validate: validator.New(),
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if helpers.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title": "Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "login", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		redirectWithMessage(w, r, "/login", "Email and password are required", "error")
		return
	}

	user, err := h.userRepo.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidCredentials) {
			redirectWithMessage(w, r, "/login", "Invalid email or password", "error")
			return
		}
		log.Printf("AuthHandler.Login: %v", err)
		redirectWithMessage(w, r, "/login", "Login failed, please try again", "error")
		return
	}

	if err := h.session.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Login: failed to save session: %v", err)
		redirectWithMessage(w, r, "/login", "Login failed, please try again", "error")
		return
	}

	// the guest cart follows the shopper into the account
	if cartID := helpers.CartID(r); cartID != "" {
		if err := h.cartRepo.AttachUser(r.Context(), cartID, user.ID); err != nil {
			log.Printf("AuthHandler.Login: failed to attach cart %s: %v", cartID, err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if helpers.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := helpers.GetBaseData(r, h.settings, map[string]interface{}{
		"Title": "Register",
	})
	_ = h.render.HTML(w, http.StatusOK, "register", data)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := registerForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Password:  r.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		redirectWithMessage(w, r, "/register", "Please fill in all fields correctly", "error")
		return
	}

	if existing, err := h.userRepo.FindByEmail(r.Context(), form.Email); err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		redirectWithMessage(w, r, "/register", "Registration failed, please try again", "error")
		return
	} else if existing != nil {
		redirectWithMessage(w, r, "/register", "An account with this email already exists", "error")
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Password:  form.Password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		redirectWithMessage(w, r, "/register", "Registration failed, please try again", "error")
		return
	}

	if err := h.session.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Register: failed to save session: %v", err)
	}
	redirectWithMessage(w, r, "/", "Welcome to "+h.settings.StoreName, "success")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.Logout: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
