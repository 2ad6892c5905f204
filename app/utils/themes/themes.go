package themes

// Settings is the store-wide theme configuration fetched once from the
// store-info API at startup and read-only afterwards. Components receive it
// through template base data; nothing mutates it past initialization.
type Settings struct {
	ThemeID         int
	StoreName       string
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	TextColor       string
	BackgroundColor string
	FontFamily      string
	HeadingFont     string
	CurrencySymbol  string
}

// Default is the baked-in fallback used when the store-info fetch fails.
func Default() Settings {
	return Settings{
		ThemeID:         1,
		StoreName:       "Velora",
		PrimaryColor:    "#1f2937",
		SecondaryColor:  "#6b7280",
		AccentColor:     "#d97706",
		TextColor:       "#111827",
		BackgroundColor: "#ffffff",
		FontFamily:      "Inter, sans-serif",
		HeadingFont:     "Inter, sans-serif",
		CurrencySymbol:  "₹",
	}
}

// Component names one themed region of the page. Each component owns its
// own template table; a theme id missing from a table falls back to the
// entry for theme 1.
type Component string

const (
	ComponentHeader       Component = "header"
	ComponentFooter       Component = "footer"
	ComponentSearch       Component = "search"
	ComponentProductCard  Component = "product_card"
	ComponentCategoryCard Component = "category_card"
)

// templateTables maps each component to its per-theme template names. Not
// every component implements all six themes; search and the category card
// reuse the theme 1 layout for theme 6.
var templateTables = map[Component]map[int]string{
	ComponentHeader: {
		1: "partials/header_classic",
		2: "partials/header_minimal",
		3: "partials/header_banner",
		4: "partials/header_split",
		5: "partials/header_mega",
		6: "partials/header_compact",
	},
	ComponentFooter: {
		1: "partials/footer_classic",
		2: "partials/footer_minimal",
		3: "partials/footer_columns",
		4: "partials/footer_split",
		5: "partials/footer_dark",
		6: "partials/footer_compact",
	},
	ComponentSearch: {
		1: "partials/search_inline",
		2: "partials/search_overlay",
		3: "partials/search_bar",
		4: "partials/search_drawer",
		5: "partials/search_modal",
	},
	ComponentProductCard: {
		1: "partials/card_classic",
		2: "partials/card_minimal",
		3: "partials/card_overlay",
		4: "partials/card_wide",
		5: "partials/card_tile",
		6: "partials/card_compact",
	},
	ComponentCategoryCard: {
		1: "partials/category_classic",
		2: "partials/category_minimal",
		3: "partials/category_overlay",
		4: "partials/category_wide",
		5: "partials/category_tile",
	},
}

// Template resolves the template name for a component under a theme,
// defaulting to the theme 1 entry for ids the component does not implement.
func Template(c Component, themeID int) string {
	table, ok := templateTables[c]
	if !ok {
		return ""
	}
	if name, ok := table[themeID]; ok {
		return name
	}
	return table[1]
}

// Templates resolves every component at once, for injection into template
// base data.
func Templates(themeID int) map[string]string {
	out := make(map[string]string, len(templateTables))
	for c := range templateTables {
		out[string(c)] = Template(c, themeID)
	}
	return out
}
