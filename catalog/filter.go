package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

type SortOrder string

const (
	SortRating    SortOrder = "rating"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
)

// ParseSortOrder maps a query value to a sort order; unknown values sort by
// rating.
func ParseSortOrder(v string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(v))) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	default:
		return SortRating
	}
}

// Query describes a listing request.
type Query struct {
	Search   string
	Category string
	Sort     SortOrder
}

// PriceRank maps a symbolic price tier ("₹", "₹₹", "$$$") to its ordinal
// rank, which is the number of symbols. Empty tiers rank 0.
func PriceRank(tier string) int {
	return utf8.RuneCountInString(strings.TrimSpace(tier))
}

// Search keeps salons whose name or location contains q, case-insensitively.
// An empty q keeps everything.
func Search(salons []models.Salon, q string) []models.Salon {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return salons
	}
	var out []models.Salon
	for _, s := range salons {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Location), q) {
			out = append(out, s)
		}
	}
	return out
}

// FilterCategory keeps salons with any service tag containing category.
// "all" and the empty string disable the filter.
func FilterCategory(salons []models.Salon, category string) []models.Salon {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return salons
	}
	var out []models.Salon
	for _, s := range salons {
		for _, tag := range s.Services {
			if strings.Contains(strings.ToLower(tag), category) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Sort orders salons in place. Ties keep their catalog order.
func Sort(salons []models.Salon, order SortOrder) {
	sort.SliceStable(salons, func(i, j int) bool {
		switch order {
		case SortPriceLow:
			return PriceRank(salons[i].Price) < PriceRank(salons[j].Price)
		case SortPriceHigh:
			return PriceRank(salons[i].Price) > PriceRank(salons[j].Price)
		default:
			return salons[i].Rating > salons[j].Rating
		}
	})
}

// List applies search, category filter and sort over the catalog.
func (c *Catalog) List(q Query) []models.Salon {
	out := FilterCategory(Search(c.All(), q.Search), q.Category)
	if out == nil {
		out = []models.Salon{}
	}
	Sort(out, q.Sort)
	return out
}
