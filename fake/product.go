package fake

import (
	"fmt"
	"strings"
	"time"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

// Product is a catalog entry. BasePrice is always the price of the last
// PriceHistory entry, and Cost is derived from it via the owning
// subcategory's profit margin. CurrentStock is decremented in place by
// transaction generation and never goes below zero.
type Product struct {
	ProductID     string       `json:"product_id"`
	SKU           string       `json:"sku"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	CategoryID    string       `json:"category_id"`
	SubcategoryID string       `json:"subcategory_id"`
	Brand         string       `json:"brand"`
	BasePrice     float64      `json:"base_price"`
	Cost          float64      `json:"cost"`
	CurrentStock  int          `json:"current_stock"`
	ReorderLevel  int          `json:"reorder_level"`
	WeightKg      float64      `json:"weight_kg"`
	Dimensions    Dimensions   `json:"dimensions"`
	IsActive      bool         `json:"is_active"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"review_count"`
	PriceHistory  []PricePoint `json:"price_history"`
	CreationDate  string       `json:"creation_date"`
	LastUpdated   string       `json:"last_updated"`
	Tags          []string     `json:"tags"`
	Seasonal      bool         `json:"seasonal"`
	Featured      bool         `json:"featured"`
}

// Dimensions is a product's shipping box in centimeters.
type Dimensions struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// PricePoint is one entry in a product's price history, tagged with the
// market event that caused it.
type PricePoint struct {
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
	Reason string  `json:"reason"`
}

var priceRanges = map[string][2]float64{
	"Electronics":      {50, 2000},
	"Clothing":         {15, 300},
	"Home & Garden":    {25, 800},
	"Sports":           {20, 500},
	"Books":            {5, 50},
	"Health & Beauty":  {10, 150},
	"Automotive":       {15, 400},
	"Toys & Games":     {8, 200},
	"Jewelry":          {30, 1000},
	"Food & Beverages": {3, 80},
}

var brandsByCategory = map[string][]string{
	"Electronics":   {"TechCorp", "InnovateTech", "DigitalPro", "SmartDevices", "FutureTech"},
	"Clothing":      {"StyleCo", "FashionForward", "UrbanWear", "ClassicStyle", "ModernFit"},
	"Home & Garden": {"HomeComfort", "LivingStyle", "GardenPro", "DecorPlus", "CozyHome"},
}

var genericBrands = []string{"GenericBrand", "QualityMaker", "ReliableCorp"}

var nameAdjectives = []string{"Premium", "Professional", "Advanced", "Deluxe", "Essential", "Classic", "Modern", "Ultimate"}
var nameDescriptors = []string{"Pro", "Plus", "Elite", "Standard", "Compact", "Extended", "Smart", "Enhanced"}

var productTags = []string{
	"bestseller", "new_arrival", "eco_friendly", "premium", "budget",
	"limited_edition", "trending", "featured", "sale", "recommended",
	"organic", "handmade", "imported", "local", "certified", "award_winning",
}

// Price history events, heaviest first. Factor ranges are multiplicative
// against the prior price.
var priceEvents = []struct {
	reason string
	weight float64
	lo, hi float64
}{
	{"promotion", 0.3, 0.7, 0.9},
	{"market_adjustment", 0.25, 0.9, 1.1},
	{"cost_increase", 0.2, 1.05, 1.25},
	{"clearance", 0.15, 0.5, 0.8},
	{"restock", 0.1, 0.9, 1.1},
}

var priceEventWeights = func() []float64 {
	ws := make([]float64, len(priceEvents))
	for i, e := range priceEvents {
		ws[i] = e.weight
	}
	return ws
}()

// genProducts produces n products referencing the already generated
// categories. Each product picks a uniform random category/subcategory pair;
// categories absent from the price table fall back to the (10, 100) range.
func (gn *Generator) genProducts(ds *Dataset, n int) []*Product {
	products := make([]*Product, 0, n)
	if len(ds.Categories) == 0 {
		return products
	}
	listingStart := gn.now.AddDate(0, 0, -2*gn.cfg.TimespanDays)
	for i := 0; i < n; i++ {
		cat := ds.Categories[gn.g.IntIn(0, len(ds.Categories)-1)]
		sub := cat.Subcategories[gn.g.IntIn(0, len(cat.Subcategories)-1)]

		lo, hi := 10.0, 100.0
		if r, ok := priceRanges[cat.Name]; ok {
			lo, hi = r[0], r[1]
		}
		listPrice := gen.Round2(gn.g.Float64In(lo, hi))
		history := gn.priceHistory(listPrice, listingStart)
		current := history[len(history)-1].Price

		brands := genericBrands
		if bs, ok := brandsByCategory[cat.Name]; ok {
			brands = bs
		}
		brand := gn.g.Choice(brands)

		p := &Product{
			ProductID:     fmt.Sprintf("prod_%05d", i),
			SKU:           fmt.Sprintf("%s-%06d", strings.ToUpper(brand[:3]), gn.g.IntIn(100000, 999999)),
			Name:          fmt.Sprintf("%s %s %s", gn.g.Choice(nameAdjectives), sub.Name, gn.g.Choice(nameDescriptors)),
			Description:   fmt.Sprintf("%s %s by %s. %s quality for everyday use.", sub.Name, strings.ToLower(cat.Name), brand, gn.g.Choice(nameAdjectives)),
			CategoryID:    cat.CategoryID,
			SubcategoryID: sub.SubcategoryID,
			Brand:         brand,
			BasePrice:     current,
			Cost:          gen.Round2(current * (1 - sub.ProfitMargin)),
			CurrentStock:  gn.g.IntIn(0, 1000),
			ReorderLevel:  gn.g.IntIn(10, 50),
			WeightKg:      gen.Round2(gn.g.Float64In(0.1, 25.0)),
			Dimensions: Dimensions{
				LengthCm: gen.Round(gn.g.Float64In(5, 120), 1),
				WidthCm:  gen.Round(gn.g.Float64In(5, 80), 1),
				HeightCm: gen.Round(gn.g.Float64In(2, 40), 1),
			},
			IsActive:     gn.g.Bool(0.92),
			Rating:       gen.Round(gn.g.Float64In(1.0, 5.0), 1),
			ReviewCount:  gn.g.IntIn(0, 500),
			PriceHistory: history,
			CreationDate: history[0].Date,
			LastUpdated:  history[len(history)-1].Date,
			Tags:         gn.genTags(),
			Seasonal:     gn.g.Bool(0.5),
			Featured:     gn.g.Bool(0.1),
		}
		products = append(products, p)
	}
	return products
}

// priceHistory walks 0-4 market events forward from the initial listing,
// each 7-45 days after the previous, applying its factor multiplicatively and
// rounding to cents at every step.
func (gn *Generator) priceHistory(listPrice float64, start time.Time) []PricePoint {
	history := []PricePoint{{
		Price:  listPrice,
		Date:   gn.timestamp(start),
		Reason: "initial_listing",
	}}
	price := listPrice
	date := start
	for i, changes := 0, gn.g.IntIn(0, 4); i < changes; i++ {
		date = date.AddDate(0, 0, gn.g.IntIn(7, 45))
		event := priceEvents[gn.g.Weighted(priceEventWeights)]
		price = gen.Round2(price * gn.g.Float64In(event.lo, event.hi))
		history = append(history, PricePoint{
			Price:  price,
			Date:   gn.timestamp(date),
			Reason: event.reason,
		})
	}
	return history
}

func (gn *Generator) genTags() []string {
	idxs := gn.g.Sample(len(productTags), gn.g.IntIn(0, 4))
	tags := make([]string, len(idxs))
	for i, idx := range idxs {
		tags[i] = productTags[idx]
	}
	return tags
}
