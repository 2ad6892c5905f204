package other

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
)

// APIEnvelope is the response wrapper every store API endpoint uses.
type APIEnvelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Money decodes a JSON number, a numeric string, or null. Anything the
// backend sends that does not parse coerces to zero rather than failing the
// whole payload.
type Money struct {
	decimal.Decimal
	Valid bool
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		m.Valid = false
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		m.Valid = false
		return nil
	}
	m.Decimal = d
	m.Valid = true
	return nil
}

// FlexInt64 decodes a JSON number, a numeric string, or null.
type FlexInt64 struct {
	Int64 int64
	Valid bool
}

func (f *FlexInt64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		f.Valid = false
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// quantity fields sometimes arrive as "3.0"
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			f.Valid = false
			return nil
		}
		n = int64(fl)
	}
	f.Int64 = n
	f.Valid = true
	return nil
}

// StringList decodes either a JSON array of strings or a single string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one != "" {
			*l = []string{one}
		} else {
			*l = nil
		}
		return nil
	}
	*l = nil
	return nil
}

// APIProductImage is one entry of the legacy product_images list.
type APIProductImage struct {
	ID    FlexInt64 `json:"id"`
	Path  string    `json:"path"`
	Image string    `json:"image"`
}

// APIVariant is the raw variant shape off the wire.
type APIVariant struct {
	ID         FlexInt64 `json:"id"`
	Variation  string    `json:"variation"`
	Price      Money     `json:"price"`
	FinalPrice *Money    `json:"final_price"`
	OldPrice   *Money    `json:"old_price"`
	Stock      FlexInt64 `json:"stock"`
}

// APIProduct is the raw product shape off the wire: duck-typed, with several
// legacy image fields of which the first non-empty wins.
type APIProduct struct {
	ID            FlexInt64         `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	AlternateName string            `json:"alternate_name"`
	Description   string            `json:"description"`
	FinalPrice    Money             `json:"final_price"`
	OldPrice      *Money            `json:"old_price"`
	Quantity      FlexInt64         `json:"quantity"`
	CatalogID     *FlexInt64        `json:"catalog_id"`
	GlobalRule    string            `json:"globalRule"`
	WholesalerID  *FlexInt64        `json:"wholesaler_id"`
	Variants      []APIVariant      `json:"variants"`
	CoverImage    string            `json:"cover_image"`
	Images        StringList        `json:"images"`
	ProductImages []APIProductImage `json:"product_images"`
	Image         string            `json:"image"`
}

func moneyPtr(m *Money) *decimal.Decimal {
	if m == nil || !m.Valid {
		return nil
	}
	d := m.Decimal
	return &d
}

func int64Ptr(f *FlexInt64) *int64 {
	if f == nil || !f.Valid {
		return nil
	}
	n := f.Int64
	return &n
}

// primaryImage picks the display image: cover_image, then the images list,
// then product_images, then the bare image field.
func (p APIProduct) primaryImage() string {
	if p.CoverImage != "" {
		return p.CoverImage
	}
	for _, img := range p.Images {
		if img != "" {
			return img
		}
	}
	for _, pi := range p.ProductImages {
		if pi.Path != "" {
			return pi.Path
		}
		if pi.Image != "" {
			return pi.Image
		}
	}
	return p.Image
}

// NormalizeVariant maps a raw variant into the internal record.
func NormalizeVariant(v APIVariant) models.Variant {
	return models.Variant{
		ID:         v.ID.Int64,
		Label:      v.Variation,
		Price:      v.Price.Decimal,
		FinalPrice: moneyPtr(v.FinalPrice),
		OldPrice:   moneyPtr(v.OldPrice),
		Stock:      int(v.Stock.Int64),
	}
}

// NormalizeProduct maps the duck-typed wire shape into the single internal
// record the derivation code works with. Missing fields take their safe
// defaults; nothing here returns an error.
func NormalizeProduct(p APIProduct) models.Product {
	name := p.Name
	if p.AlternateName != "" {
		name = p.AlternateName
	}

	variants := make([]models.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, NormalizeVariant(v))
	}

	id := p.Slug
	if p.ID.Valid {
		id = strconv.FormatInt(p.ID.Int64, 10)
	}

	rule := models.PriceRuleHighest
	if p.GlobalRule == models.PriceRuleLowest {
		rule = models.PriceRuleLowest
	}

	return models.Product{
		ID:           id,
		Slug:         p.Slug,
		Name:         name,
		FinalPrice:   p.FinalPrice.Decimal,
		OldPrice:     moneyPtr(p.OldPrice),
		Quantity:     int(p.Quantity.Int64),
		CatalogID:    int64Ptr(p.CatalogID),
		GlobalRule:   rule,
		WholesalerID: int64Ptr(p.WholesalerID),
		Variants:     variants,
		ImagePath:    p.primaryImage(),
		Description:  p.Description,
	}
}
