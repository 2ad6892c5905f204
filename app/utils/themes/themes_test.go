package themes

import "testing"

func TestTemplateResolvesKnownThemes(t *testing.T) {
	if got := Template(ComponentHeader, 3); got != "partials/header_banner" {
		t.Errorf("header theme 3 = %q", got)
	}
	if got := Template(ComponentProductCard, 6); got != "partials/card_compact" {
		t.Errorf("product card theme 6 = %q", got)
	}
}

func TestTemplateFallsBackToThemeOne(t *testing.T) {
	// search and the category card have no theme 6 entry
	if got := Template(ComponentSearch, 6); got != Template(ComponentSearch, 1) {
		t.Errorf("search theme 6 = %q, want the theme 1 entry", got)
	}
	if got := Template(ComponentCategoryCard, 6); got != Template(ComponentCategoryCard, 1) {
		t.Errorf("category card theme 6 = %q, want the theme 1 entry", got)
	}

	// out-of-range ids also land on theme 1
	for _, id := range []int{0, 7, 99, -1} {
		for _, c := range []Component{ComponentHeader, ComponentFooter, ComponentSearch, ComponentProductCard, ComponentCategoryCard} {
			if got := Template(c, id); got != Template(c, 1) {
				t.Errorf("%s theme %d = %q, want the theme 1 entry", c, id, got)
			}
		}
	}
}

func TestTemplateUnknownComponent(t *testing.T) {
	if got := Template(Component("hero"), 1); got != "" {
		t.Errorf("unknown component = %q, want empty", got)
	}
}

func TestTemplatesCoversEveryComponent(t *testing.T) {
	out := Templates(2)
	for _, c := range []Component{ComponentHeader, ComponentFooter, ComponentSearch, ComponentProductCard, ComponentCategoryCard} {
		if out[string(c)] != Template(c, 2) {
			t.Errorf("Templates missing or wrong for %s: %q", c, out[string(c)])
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	d := Default()
	if d.ThemeID != 1 {
		t.Errorf("default ThemeID = %d, want 1", d.ThemeID)
	}
	if d.StoreName == "" || d.CurrencySymbol == "" {
		t.Errorf("default settings missing store name or currency: %+v", d)
	}
}
