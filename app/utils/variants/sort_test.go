package variants

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/velora-dev/go-storefront/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func labelled(labels ...string) []models.Variant {
	vs := make([]models.Variant, len(labels))
	for i, l := range labels {
		vs[i] = models.Variant{ID: int64(i + 1), Label: l, Price: decimal.NewFromInt(100), Stock: 1}
	}
	return vs
}

func labelsOf(vs []models.Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label
	}
	return out
}

func TestSortSizeRankOrdering(t *testing.T) {
	got := labelsOf(Sort(labelled("XXL", "S", "XL", "XS", "L", "M", "XXXXL", "XXXL")))
	want := []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL", "XXXXL"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestSortTiers(t *testing.T) {
	// sizes before numbers before words
	got := labelsOf(Sort(labelled("Blue", "42", "M", "7.5", "Red", "XS")))
	want := []string{"XS", "M", "7.5", "42", "BLUE", "RED"}
	for i := range want {
		if normalizeForTest(got[i]) != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func normalizeForTest(s string) string {
	return normalize(s)
}

func TestSortNumericIsNumeric(t *testing.T) {
	got := labelsOf(Sort(labelled("10", "2", "1.5")))
	want := []string{"1.5", "2", "10"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompareNormalizesCaseAndWhitespace(t *testing.T) {
	col := collate.New(language.Und)
	if Compare(" xl ", "XL", col) != 0 {
		t.Errorf("expected ' xl ' and 'XL' to compare equal")
	}
	if Compare("xs", "s", col) >= 0 {
		t.Errorf("expected lowercase xs to rank before s")
	}
}

func TestSortIdempotent(t *testing.T) {
	once := Sort(labelled("Red", "10", "M", "XS", "8", "Blue"))
	twice := Sort(once)
	for i := range once {
		if twice[i].ID != once[i].ID {
			t.Fatalf("position %d: re-sort moved id %d to id %d", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := labelled("XL", "S", "M")
	_ = Sort(in)
	if in[0].Label != "XL" || in[1].Label != "S" || in[2].Label != "M" {
		t.Errorf("input slice reordered: %v", labelsOf(in))
	}
}

func TestSortStableForEqualLabels(t *testing.T) {
	in := []models.Variant{
		{ID: 1, Label: "M", Stock: 1},
		{ID: 2, Label: "m", Stock: 1},
		{ID: 3, Label: " M ", Stock: 1},
	}
	got := Sort(in)
	for i, wantID := range []int64{1, 2, 3} {
		if got[i].ID != wantID {
			t.Errorf("position %d: got id %d, want %d", i, got[i].ID, wantID)
		}
	}
}

func TestSortEmptyAndNil(t *testing.T) {
	if got := Sort(nil); got != nil {
		t.Errorf("Sort(nil) = %v, want nil", got)
	}
	if got := Sort([]models.Variant{}); len(got) != 0 {
		t.Errorf("Sort(empty) = %v, want empty", got)
	}
}
