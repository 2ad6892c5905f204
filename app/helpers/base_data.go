package helpers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/velora-dev/go-storefront/app/models/other"
	"github.com/velora-dev/go-storefront/app/utils/breadcrumb"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

// GetBaseData merges page data with everything the layout expects: theme
// tokens and per-component theme templates, the logged-in user, cart count,
// and flash message query params.
func GetBaseData(r *http.Request, settings themes.Settings, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = settings.StoreName
	}
	pageSpecificData["Theme"] = settings
	pageSpecificData["ThemeTemplates"] = themes.Templates(settings.ThemeID)

	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	pageSpecificData["CSRFField"] = csrf.TemplateField(r)

	pageSpecificData["CartCount"] = 0
	if count, ok := r.Context().Value(ContextKeyCartCount).(int); ok {
		pageSpecificData["CartCount"] = count
	}

	pageSpecificData["IsLoggedIn"] = false
	pageSpecificData["IsWholesaler"] = false
	if user := CurrentUser(r); user != nil {
		pageSpecificData["IsLoggedIn"] = true
		pageSpecificData["IsWholesaler"] = user.IsWholesaler
		pageSpecificData["User"] = &other.UserForTemplate{
			ID:           user.ID,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			Email:        user.Email,
			Phone:        user.Phone,
			Role:         user.Role,
			IsWholesaler: user.IsWholesaler,
		}
	}

	pageSpecificData["Message"] = r.URL.Query().Get("message")
	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")

	return pageSpecificData
}
