package renderer

import (
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/velora-dev/go-storefront/app/utils/format"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

// New builds the HTML renderer. Theme settings are baked into the FuncMap
// once at startup; templates resolve per-component theme variants through
// the "themeTemplate" helper.
func New(settings themes.Settings) *render.Render {
	money := format.NewMoney(settings.CurrencySymbol)

	return render.New(render.Options{
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"until": func(count int) []int {
					items := make([]int, count)
					for i := 0; i < count; i++ {
						items[i] = i
					}
					return items
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"min": func(a, b int) int {
					if a < b {
						return a
					}
					return b
				},
				"max": func(a, b int) int {
					if a > b {
						return a
					}
					return b
				},
				"money":    money.Format,
				"moneyPtr": money.FormatPtr,
				"isZero":   func(d decimal.Decimal) bool { return d.IsZero() },
				"themeTemplate": func(component string) string {
					return themes.Template(themes.Component(component), settings.ThemeID)
				},
			},
		},
	})
}
