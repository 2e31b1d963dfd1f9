package fake

import (
	"fmt"
	"time"
)

// Session is one simulated browsing visit. EndTime is always StartTime plus
// DurationSeconds.
type Session struct {
	SessionID        string   `json:"session_id"`
	UserID           string   `json:"user_id"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	DurationSeconds  int      `json:"duration_seconds"`
	DeviceType       string   `json:"device_type"`
	Browser          string   `json:"browser"`
	OS               string   `json:"os"`
	GeoData          GeoData  `json:"geo_data"`
	PagesViewed      int      `json:"pages_viewed"`
	ProductsViewed   []string `json:"products_viewed"`
	ConversionStatus string   `json:"conversion_status"`
	Referrer         string   `json:"referrer"`
}

// viewedProductPool caps the slice of the catalog sessions browse. Only the
// first 100 generated products ever appear in products_viewed; kept to match
// the shape of datasets already loaded downstream.
const viewedProductPool = 100

var deviceTypes = []string{"mobile", "desktop", "tablet"}
var browsers = []string{"Chrome", "Safari", "Firefox", "Edge"}
var operatingSystems = []string{"iOS", "Android", "Windows", "macOS"}
var referrers = []string{"direct", "search_engine", "social_media", "email", "affiliate", "ads"}

var conversionStatuses = []string{"converted", "abandoned", "browsed"}
var conversionWeights = []float64{0.03, 0.15, 0.82}

// genSessions simulates s browsing visits. Users are picked uniformly, with
// no filtering by account status.
func (gn *Generator) genSessions(ds *Dataset, s int) {
	ds.Sessions = make([]*Session, 0, s)
	if len(ds.Users) == 0 {
		return
	}
	for i := 0; i < s; i++ {
		ds.Sessions = append(ds.Sessions, gn.genSession(ds))
	}
}

func (gn *Generator) genSession(ds *Dataset) *Session {
	user := ds.Users[gn.g.IntIn(0, len(ds.Users)-1)]
	start := gn.g.TimeIn(gn.spanStart(), gn.now)
	duration := gn.g.IntIn(30, 3600)

	geo := user.GeoData
	geo.IPAddress = fmt.Sprintf("%d.%d.%d.%d",
		gn.g.IntIn(1, 254), gn.g.IntIn(0, 255), gn.g.IntIn(0, 255), gn.g.IntIn(1, 254))

	return &Session{
		SessionID:        gn.newID("sess_", 10),
		UserID:           user.UserID,
		StartTime:        gn.timestamp(start),
		EndTime:          gn.timestamp(start.Add(time.Duration(duration) * time.Second)),
		DurationSeconds:  duration,
		DeviceType:       gn.g.Choice(deviceTypes),
		Browser:          gn.g.Choice(browsers),
		OS:               gn.g.Choice(operatingSystems),
		GeoData:          geo,
		PagesViewed:      gn.g.IntIn(1, 15),
		ProductsViewed:   gn.viewedProducts(ds),
		ConversionStatus: conversionStatuses[gn.g.Weighted(conversionWeights)],
		Referrer:         gn.g.Choice(referrers),
	}
}

func (gn *Generator) viewedProducts(ds *Dataset) []string {
	pool := ds.Products
	if len(pool) > viewedProductPool {
		pool = pool[:viewedProductPool]
	}
	idxs := gn.g.Sample(len(pool), gn.g.IntIn(0, 5))
	viewed := make([]string, len(idxs))
	for i, idx := range idxs {
		viewed[i] = pool[idx].ProductID
	}
	return viewed
}
