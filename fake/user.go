package fake

import (
	"fmt"
	"strings"
)

// User is a shopper profile. TotalOrders and LifetimeValue start at zero and
// are mutated only by transaction generation.
type User struct {
	UserID           string       `json:"user_id"`
	Email            string       `json:"email"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Demographics     Demographics `json:"demographics"`
	GeoData          GeoData      `json:"geo_data"`
	Preferences      Preferences  `json:"preferences"`
	RegistrationDate string       `json:"registration_date"`
	LastActive       string       `json:"last_active"`
	AccountStatus    string       `json:"account_status"`
	LoyaltyTier      string       `json:"loyalty_tier"`
	TotalOrders      int          `json:"total_orders"`
	LifetimeValue    float64      `json:"lifetime_value"`
}

// Demographics describes who a user is.
type Demographics struct {
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	IncomeBracket string `json:"income_bracket"`
	Education     string `json:"education"`
	Occupation    string `json:"occupation"`
	MaritalStatus string `json:"marital_status"`
}

// GeoData describes where a user is. IPAddress is only populated on session
// records.
type GeoData struct {
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Timezone   string `json:"timezone"`
	PostalCode string `json:"postal_code"`
	IPAddress  string `json:"ip_address,omitempty"`
}

// Preferences holds marketing and category affinities. PreferredCategories
// only ever references active categories.
type Preferences struct {
	PreferredCategories []string `json:"preferred_categories"`
	CommunicationEmail  bool     `json:"communication_email"`
	CommunicationSMS    bool     `json:"communication_sms"`
	MarketingConsent    bool     `json:"marketing_consent"`
	Language            string   `json:"language"`
}

var ageBrackets = [][2]int{{18, 25}, {26, 35}, {36, 45}, {46, 55}, {56, 70}}
var ageWeights = []float64{0.15, 0.30, 0.25, 0.20, 0.10}

var incomeBrackets = []string{"low", "medium", "high", "premium"}
var incomeWeights = []float64{0.25, 0.40, 0.25, 0.10}

var genders = []string{"M", "F", "Other"}
var educations = []string{"high_school", "bachelor", "master", "phd", "other"}
var maritalStatuses = []string{"single", "married", "divorced", "widowed"}

var countries = []string{"US", "CA", "UK", "DE", "FR"}
var countryWeights = []float64{0.6, 0.15, 0.1, 0.08, 0.07}

var languages = []string{"en", "es", "fr", "de"}
var languageWeights = []float64{0.7, 0.15, 0.1, 0.05}

var accountStatuses = []string{"active", "inactive", "suspended"}
var accountStatusWeights = []float64{0.85, 0.14, 0.01}

var loyaltyTiers = []string{"bronze", "silver", "gold", "platinum"}
var loyaltyWeights = []float64{0.6, 0.25, 0.12, 0.03}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Christopher", "Karen", "Charles", "Lisa", "Daniel", "Nancy",
	"Matthew", "Sandra", "Anthony", "Ashley", "Mark", "Emily", "Donald", "Kimberly",
	"Steven", "Margaret", "Andrew", "Donna", "Paul", "Michelle", "Joshua", "Carol",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton",
	"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Dover", "Oxford", "Jackson", "Burlington", "Manchester", "Milton",
	"Auburn", "Centerville", "Clayton", "Dayton", "Lexington", "Milford",
}

var states = []string{
	"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "MA", "MD", "MI", "MN",
	"MO", "NC", "NJ", "NY", "OH", "OR", "PA", "TN", "TX", "VA", "WA", "WI",
}

var userTimezones = []string{
	"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles",
	"America/Toronto", "Europe/London", "Europe/Berlin", "Europe/Paris",
}

var occupations = []string{
	"Teacher", "Nurse", "Accountant", "Software Developer", "Sales Manager",
	"Electrician", "Graphic Designer", "Pharmacist", "Chef", "Journalist",
	"Civil Engineer", "Dentist", "Photographer", "Paralegal", "Marketing Analyst",
	"Mechanic", "Librarian", "Real Estate Agent", "Data Analyst", "Architect",
}

var emailDomains = []string{"example.com", "mail.example.com", "inbox.example.org", "post.example.net"}

// genUsers produces n users. Preferred categories are sampled only from
// active categories, with the sample size clamped when fewer active
// categories exist than requested.
func (gn *Generator) genUsers(ds *Dataset, n int) []*User {
	activeCats := ds.activeCategoryIDs()
	regStart := gn.now.AddDate(0, 0, -3*gn.cfg.TimespanDays)
	regEnd := gn.now.AddDate(0, 0, -gn.cfg.TimespanDays)

	users := make([]*User, 0, n)
	for i := 0; i < n; i++ {
		bracket := ageBrackets[gn.g.Weighted(ageWeights)]
		first := gn.g.Choice(firstNames)
		last := gn.g.Choice(lastNames)
		registered := gn.g.TimeIn(regStart, regEnd)

		u := &User{
			UserID:    fmt.Sprintf("user_%06d", i),
			Email:     fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), gn.g.IntIn(1, 999), gn.g.Choice(emailDomains)),
			FirstName: first,
			LastName:  last,
			Demographics: Demographics{
				Age:           gn.g.IntIn(bracket[0], bracket[1]),
				Gender:        gn.g.Choice(genders),
				IncomeBracket: incomeBrackets[gn.g.Weighted(incomeWeights)],
				Education:     gn.g.Choice(educations),
				Occupation:    gn.g.Choice(occupations),
				MaritalStatus: gn.g.Choice(maritalStatuses),
			},
			GeoData: GeoData{
				City:       gn.g.Choice(cities),
				State:      gn.g.Choice(states),
				Country:    countries[gn.g.Weighted(countryWeights)],
				Timezone:   gn.g.Choice(userTimezones),
				PostalCode: fmt.Sprintf("%05d", gn.g.IntIn(10000, 99999)),
			},
			Preferences: Preferences{
				PreferredCategories: gn.preferredCategories(activeCats),
				CommunicationEmail:  gn.g.Bool(0.8),
				CommunicationSMS:    gn.g.Bool(0.6),
				MarketingConsent:    gn.g.Bool(0.7),
				Language:            languages[gn.g.Weighted(languageWeights)],
			},
			RegistrationDate: gn.timestamp(registered),
			LastActive:       gn.timestamp(gn.g.TimeIn(registered, gn.now)),
			AccountStatus:    accountStatuses[gn.g.Weighted(accountStatusWeights)],
			LoyaltyTier:      loyaltyTiers[gn.g.Weighted(loyaltyWeights)],
		}
		users = append(users, u)
	}
	return users
}

func (gn *Generator) preferredCategories(activeCats []string) []string {
	idxs := gn.g.Sample(len(activeCats), gn.g.IntIn(1, 5))
	prefs := make([]string, len(idxs))
	for i, idx := range idxs {
		prefs[i] = activeCats[idx]
	}
	return prefs
}
