package variants

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/velora-dev/go-storefront/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sizeRank is the fixed clothing-size ordering. Labels outside this table
// fall through to numeric, then lexicographic comparison.
var sizeRank = map[string]int{
	"XS":    1,
	"S":     2,
	"M":     3,
	"L":     4,
	"XL":    5,
	"XXL":   6,
	"XXXL":  7,
	"XXXXL": 8,
}

func normalize(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

func numericValue(label string) (float64, bool) {
	f, err := strconv.ParseFloat(label, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Compare orders two variation labels: known clothing sizes first (by table
// rank), then plain numbers (numerically), then everything else
// lexicographically with locale-aware collation.
func Compare(a, b string, col *collate.Collator) int {
	na, nb := normalize(a), normalize(b)

	ra, aSized := sizeRank[na]
	rb, bSized := sizeRank[nb]
	switch {
	case aSized && bSized:
		return ra - rb
	case aSized:
		return -1
	case bSized:
		return 1
	}

	fa, aNum := numericValue(na)
	fb, bNum := numericValue(nb)
	switch {
	case aNum && bNum:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case aNum:
		return -1
	case bNum:
		return 1
	}

	return col.CompareString(na, nb)
}

// Sort returns the variants in display order without mutating the input.
// Absent or empty input is returned as-is.
func Sort(in []models.Variant) []models.Variant {
	if len(in) == 0 {
		return in
	}
	out := make([]models.Variant, len(in))
	copy(out, in)

	col := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i].Label, out[j].Label, col) < 0
	})
	return out
}
