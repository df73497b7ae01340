package instagram

import (
	"time"

	"github.com/orbicity/hotel-ops-api/internal/domain"
)

// mockAnchor fixa as datas dos dados sintéticos para que o JSON seja sempre o mesmo
var mockAnchor = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var mockPosts = []domain.PostRecord{
	{ID: "1", Caption: "Amazing sea view! 🌊 #Batumi #OrbiCity", MediaURL: "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=400", Likes: 234, Comments: 18, Shares: 12, Reach: 3420, Timestamp: mockAnchor.AddDate(0, 0, -1), MediaType: domain.MediaImage},
	{ID: "2", Caption: "Sunset vibes 🌅 #Sunset #Batumi", MediaURL: "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400", Likes: 456, Comments: 32, Shares: 24, Reach: 5200, Timestamp: mockAnchor.AddDate(0, 0, -2), MediaType: domain.MediaImage},
	{ID: "3", Caption: "Perfect vacation ✨ #Vacation #Hotel", MediaURL: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400", Likes: 189, Comments: 15, Shares: 8, Reach: 2800, Timestamp: mockAnchor.AddDate(0, 0, -3), MediaType: domain.MediaImage},
	{ID: "4", Caption: "Georgian hospitality 🏨 #Hotel #Georgia", MediaURL: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400", Likes: 312, Comments: 28, Shares: 16, Reach: 4100, Timestamp: mockAnchor.AddDate(0, 0, -4), MediaType: domain.MediaImage},
	{ID: "5", Caption: "Morning view ☀️ #MorningView", MediaURL: "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=400", Likes: 523, Comments: 45, Shares: 31, Reach: 6800, Timestamp: mockAnchor.AddDate(0, 0, -5), MediaType: domain.MediaImage},
	{ID: "6", Caption: "Beach life 🏖️ #Beach #Summer", MediaURL: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400", Likes: 287, Comments: 22, Shares: 14, Reach: 3900, Timestamp: mockAnchor.AddDate(0, 0, -6), MediaType: domain.MediaImage},
}

// MockMetrics devolve as métricas sintéticas exibidas quando a origem está indisponível
func MockMetrics() domain.MetricsRecord {
	return domain.MetricsRecord{
		Followers:     12543,
		Following:     856,
		Posts:         324,
		Engagement:    4.2,
		Reach:         45000,
		Impressions:   128000,
		ProfileViews:  2340,
		WebsiteClicks: 567,
		LastUpdated:   mockAnchor,
	}
}

// MockPosts devolve até limit publicações sintéticas, sempre na mesma ordem
func MockPosts(limit int) []domain.PostRecord {
	if limit <= 0 {
		return []domain.PostRecord{}
	}
	if limit > len(mockPosts) {
		limit = len(mockPosts)
	}

	out := make([]domain.PostRecord, limit)
	copy(out, mockPosts[:limit])
	return out
}

// MockDemographics devolve o perfil de público fixo do painel. A planilha não
// traz esses dados, então o bloco é sempre sintético.
func MockDemographics() domain.DemographicsRecord {
	return domain.DemographicsRecord{
		AgeRanges: []domain.AgeRange{
			{Range: "18-24", Percentage: 15},
			{Range: "25-34", Percentage: 35},
			{Range: "35-44", Percentage: 28},
			{Range: "45-54", Percentage: 14},
			{Range: "55+", Percentage: 8},
		},
		GenderSplit: domain.GenderSplit{Male: 42, Female: 56, Other: 2},
		TopLocations: []domain.Location{
			{City: "Tbilisi", Country: "Georgia", Percentage: 25},
			{City: "Moscow", Country: "Russia", Percentage: 18},
			{City: "Istanbul", Country: "Turkey", Percentage: 12},
		},
	}
}
