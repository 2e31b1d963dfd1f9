package fake

import (
	"time"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

// Summary is the dataset_summary.json document: generation metadata plus the
// aggregate statistics of a run.
type Summary struct {
	GenerationMetadata Metadata        `json:"generation_metadata"`
	DataVolumes        Volumes         `json:"data_volumes"`
	BusinessMetrics    BusinessMetrics `json:"business_metrics"`
	DataQuality        Quality         `json:"data_quality"`
	TimeRange          TimeRange       `json:"time_range"`
}

// Metadata records when and with what configuration the dataset was built.
type Metadata struct {
	Timestamp        string `json:"timestamp"`
	GeneratorVersion string `json:"generator_version"`
	Configuration    Config `json:"configuration"`
}

// Volumes holds per-entity record counts.
type Volumes struct {
	Categories   int `json:"categories"`
	Products     int `json:"products"`
	Users        int `json:"users"`
	Sessions     int `json:"sessions"`
	Transactions int `json:"transactions"`
	TotalRecords int `json:"total_records"`
}

// BusinessMetrics holds revenue and catalog health aggregates.
type BusinessMetrics struct {
	TotalRevenue            float64 `json:"total_revenue"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
	// ConversionRate is transactions per session, as a percentage.
	ConversionRate       float64 `json:"conversion_rate"`
	ActiveProducts       int     `json:"active_products"`
	ActiveUsers          int     `json:"active_users"`
	AverageProductRating float64 `json:"average_product_rating"`
	TotalInventoryValue  float64 `json:"total_inventory_value"`
	SkippedTransactions  int     `json:"skipped_transactions"`
}

// Quality holds basic data-quality counts.
type Quality struct {
	ProductsWithReviews       int `json:"products_with_reviews"`
	UsersWithPreferences      int `json:"users_with_preferences"`
	TransactionsWithDiscounts int `json:"transactions_with_discounts"`
}

// TimeRange is the observed session activity window. Both fields are null
// for an empty dataset.
type TimeRange struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

const generatorVersion = "2.0"

// BuildSummary computes the summary document for a finished dataset. Empty
// collections are handled without dividing by zero; averages and rates
// default to 0.
func BuildSummary(ds *Dataset, cfg Config, generatedAt time.Time) *Summary {
	var totalRevenue float64
	withDiscounts := 0
	for _, t := range ds.Transactions {
		totalRevenue += t.Total
		if t.Discount > 0 {
			withDiscounts++
		}
	}

	avgTransaction := 0.0
	if len(ds.Transactions) > 0 {
		avgTransaction = totalRevenue / float64(len(ds.Transactions))
	}
	conversion := 0.0
	if len(ds.Sessions) > 0 {
		conversion = float64(len(ds.Transactions)) / float64(len(ds.Sessions)) * 100
	}

	activeProducts, withReviews := 0, 0
	var ratingSum, inventoryValue float64
	for _, p := range ds.Products {
		if p.IsActive {
			activeProducts++
		}
		if p.ReviewCount > 0 {
			withReviews++
		}
		ratingSum += p.Rating
		inventoryValue += p.BasePrice * float64(p.CurrentStock)
	}
	avgRating := 0.0
	if len(ds.Products) > 0 {
		avgRating = ratingSum / float64(len(ds.Products))
	}

	activeUsers, withPrefs := 0, 0
	for _, u := range ds.Users {
		if u.AccountStatus == "active" {
			activeUsers++
		}
		if len(u.Preferences.PreferredCategories) > 0 {
			withPrefs++
		}
	}

	var timeRange TimeRange
	if len(ds.Sessions) > 0 {
		start, end := ds.Sessions[0].StartTime, ds.Sessions[0].EndTime
		for _, s := range ds.Sessions[1:] {
			if s.StartTime < start {
				start = s.StartTime
			}
			if s.EndTime > end {
				end = s.EndTime
			}
		}
		timeRange = TimeRange{StartDate: &start, EndDate: &end}
	}

	return &Summary{
		GenerationMetadata: Metadata{
			Timestamp:        generatedAt.UTC().Format(time.RFC3339),
			GeneratorVersion: generatorVersion,
			Configuration:    cfg,
		},
		DataVolumes: Volumes{
			Categories:   len(ds.Categories),
			Products:     len(ds.Products),
			Users:        len(ds.Users),
			Sessions:     len(ds.Sessions),
			Transactions: len(ds.Transactions),
			TotalRecords: len(ds.Categories) + len(ds.Products) + len(ds.Users) + len(ds.Sessions) + len(ds.Transactions),
		},
		BusinessMetrics: BusinessMetrics{
			TotalRevenue:            gen.Round2(totalRevenue),
			AverageTransactionValue: gen.Round2(avgTransaction),
			ConversionRate:          gen.Round2(conversion),
			ActiveProducts:          activeProducts,
			ActiveUsers:             activeUsers,
			AverageProductRating:    gen.Round2(avgRating),
			TotalInventoryValue:     gen.Round2(inventoryValue),
			SkippedTransactions:     ds.SkippedTransactions,
		},
		DataQuality: Quality{
			ProductsWithReviews:       withReviews,
			UsersWithPreferences:      withPrefs,
			TransactionsWithDiscounts: withDiscounts,
		},
		TimeRange: timeRange,
	}
}
