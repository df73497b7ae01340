package domain

import "time"

// DataSource indica a procedência de um resultado entregue à UI
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceFallback DataSource = "fallback"
)

type MediaType string

const (
	MediaImage    MediaType = "IMAGE"
	MediaVideo    MediaType = "VIDEO"
	MediaCarousel MediaType = "CAROUSEL"
)

// MetricsRecord representa as métricas da conta do Instagram. Sempre completo:
// campos ausentes na origem valem 0.
type MetricsRecord struct {
	Followers     int       `json:"followers"`
	Following     int       `json:"following"`
	Posts         int       `json:"posts"`
	Engagement    float64   `json:"engagement"`
	Reach         int       `json:"reach"`
	Impressions   int       `json:"impressions"`
	ProfileViews  int       `json:"profileViews"`
	WebsiteClicks int       `json:"websiteClicks"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type PostRecord struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption"`
	MediaURL  string    `json:"mediaUrl"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Reach     int       `json:"reach"`
	Timestamp time.Time `json:"timestamp"`
	MediaType MediaType `json:"mediaType"`
}

type MetricsResult struct {
	Data   MetricsRecord `json:"data"`
	Source DataSource    `json:"source"`
	Reason string        `json:"reason,omitempty"`
}

type PostsResult struct {
	Data   []PostRecord `json:"data"`
	Source DataSource   `json:"source"`
	Reason string       `json:"reason,omitempty"`
}

type AgeRange struct {
	Range      string  `json:"range"`
	Percentage float64 `json:"percentage"`
}

type GenderSplit struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
	Other  float64 `json:"other"`
}

type Location struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Percentage float64 `json:"percentage"`
}

// DemographicsRecord é o perfil do público exibido no painel
type DemographicsRecord struct {
	AgeRanges    []AgeRange  `json:"ageRanges"`
	GenderSplit  GenderSplit `json:"genderSplit"`
	TopLocations []Location  `json:"topLocations"`
}

type DemographicsResult struct {
	Data   DemographicsRecord `json:"data"`
	Source DataSource         `json:"source"`
	Reason string             `json:"reason,omitempty"`
}

// DashboardResult agrega o painel. O público nunca vem da planilha e é sempre fallback.
type DashboardResult struct {
	Metrics      MetricsResult      `json:"metrics"`
	Posts        PostsResult        `json:"posts"`
	Demographics DemographicsResult `json:"demographics"`
}
