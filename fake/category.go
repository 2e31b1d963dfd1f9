package fake

import (
	"fmt"
	"strings"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

// Category is a top-level entry in the product taxonomy.
type Category struct {
	CategoryID    string         `json:"category_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	IsActive      bool           `json:"is_active"`
	CreatedDate   string         `json:"created_date"`
	Subcategories []*Subcategory `json:"subcategories"`
}

// Subcategory is embedded in its parent Category. ProfitMargin drives product
// cost derivation.
type Subcategory struct {
	SubcategoryID  string  `json:"subcategory_id"`
	Name           string  `json:"name"`
	ProfitMargin   float64 `json:"profit_margin"`
	CommissionRate float64 `json:"commission_rate"`
	IsFeatured     bool    `json:"is_featured"`
}

var taxonomy = []struct {
	name string
	subs []string
}{
	{"Electronics", []string{"Smartphones", "Laptops", "Headphones", "Cameras", "Gaming"}},
	{"Clothing", []string{"Men's Wear", "Women's Wear", "Kids", "Shoes", "Accessories"}},
	{"Home & Garden", []string{"Furniture", "Kitchen", "Decor", "Tools", "Lighting"}},
	{"Sports", []string{"Fitness", "Outdoor", "Team Sports", "Water Sports", "Winter Sports"}},
	{"Books", []string{"Fiction", "Non-Fiction", "Educational", "Children's", "Comics"}},
	{"Health & Beauty", []string{"Skincare", "Makeup", "Supplements", "Personal Care", "Fragrances"}},
	{"Automotive", []string{"Parts", "Accessories", "Tools", "Care Products", "Electronics"}},
	{"Toys & Games", []string{"Educational", "Action Figures", "Board Games", "Puzzles", "Outdoor"}},
	{"Jewelry", []string{"Rings", "Necklaces", "Earrings", "Watches", "Bracelets"}},
	{"Food & Beverages", []string{"Snacks", "Beverages", "Organic", "International", "Gourmet"}},
}

// genCategories produces up to n categories from the fixed taxonomy. n is
// clamped to the taxonomy size; there are no failure modes.
func (gn *Generator) genCategories(n int) []*Category {
	if n > len(taxonomy) {
		n = len(taxonomy)
	}
	cats := make([]*Category, 0, n)
	for i := 0; i < n; i++ {
		entry := taxonomy[i]
		cat := &Category{
			CategoryID:  fmt.Sprintf("cat_%03d", i),
			Name:        entry.name,
			Description: fmt.Sprintf("Premium %s products for modern lifestyle", strings.ToLower(entry.name)),
			IsActive:    gn.g.Bool(0.95),
			CreatedDate: gn.timestamp(gn.g.TimeIn(gn.now.AddDate(-2, 0, 0), gn.now.AddDate(-1, 0, 0))),
		}
		for j, sub := range entry.subs {
			cat.Subcategories = append(cat.Subcategories, &Subcategory{
				SubcategoryID:  fmt.Sprintf("sub_%03d_%02d", i, j),
				Name:           sub,
				ProfitMargin:   gen.Round(gn.g.Float64In(0.15, 0.45), 3),
				CommissionRate: gen.Round(gn.g.Float64In(0.03, 0.12), 3),
				IsFeatured:     gn.g.Bool(0.5),
			})
		}
		cats = append(cats, cat)
	}
	return cats
}

// activeCategoryIDs returns the ids of active categories in generation order.
func (ds *Dataset) activeCategoryIDs() []string {
	ids := make([]string, 0, len(ds.Categories))
	for _, cat := range ds.Categories {
		if cat.IsActive {
			ids = append(ids, cat.CategoryID)
		}
	}
	return ids
}
