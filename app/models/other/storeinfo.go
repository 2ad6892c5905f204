package other

import "github.com/velora-dev/go-storefront/app/utils/themes"

// APIStoreInfo is the raw store-info payload. Theme tokens ride along in the
// broader store configuration response; they are not independently
// fetchable.
type APIStoreInfo struct {
	ThemeID         FlexInt64 `json:"theme_id"`
	StoreName       string    `json:"store_name"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	AccentColor     string    `json:"accent_color"`
	TextColor       string    `json:"text_color"`
	BackgroundColor string    `json:"background_color"`
	FontFamily      string    `json:"font_family"`
	HeadingFont     string    `json:"heading_font"`
	CurrencySymbol  string    `json:"currency_symbol"`
}

// ToSettings fills the normalized theme settings, keeping the baked-in
// default for every token the backend leaves empty.
func (s APIStoreInfo) ToSettings() themes.Settings {
	out := themes.Default()
	if s.ThemeID.Valid && s.ThemeID.Int64 > 0 {
		out.ThemeID = int(s.ThemeID.Int64)
	}
	if s.StoreName != "" {
		out.StoreName = s.StoreName
	}
	if s.PrimaryColor != "" {
		out.PrimaryColor = s.PrimaryColor
	}
	if s.SecondaryColor != "" {
		out.SecondaryColor = s.SecondaryColor
	}
	if s.AccentColor != "" {
		out.AccentColor = s.AccentColor
	}
	if s.TextColor != "" {
		out.TextColor = s.TextColor
	}
	if s.BackgroundColor != "" {
		out.BackgroundColor = s.BackgroundColor
	}
	if s.FontFamily != "" {
		out.FontFamily = s.FontFamily
	}
	if s.HeadingFont != "" {
		out.HeadingFont = s.HeadingFont
	}
	if s.CurrencySymbol != "" {
		out.CurrencySymbol = s.CurrencySymbol
	}
	return out
}

// StateCity is the suggestion returned by the pincode lookup.
type StateCity struct {
	State string `json:"state"`
	City  string `json:"city"`
}
