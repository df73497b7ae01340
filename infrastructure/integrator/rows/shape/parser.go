package shape

import (
	"strconv"
	"strings"
	"time"

	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Parser aplica a cadeia de estratégias na ordem e aceita o primeiro registro
// completo que uma delas produzir.
type Parser struct {
	strategies []Strategy
	now        func() time.Time
}

var defaultParser = NewParser()

// NewParser cria um parser com as estratégias informadas ou, sem argumentos, com a cadeia padrão
func NewParser(strategies ...Strategy) *Parser {
	if len(strategies) == 0 {
		strategies = Strategies
	}
	return &Parser{
		strategies: strategies,
		now:        time.Now,
	}
}

// ParseMetrics extrai as métricas da conta usando a cadeia padrão
func ParseMetrics(payload rowsdomain.Payload) *domain.MetricsRecord {
	return defaultParser.Metrics(payload)
}

// ParsePosts extrai as publicações usando a cadeia padrão
func ParsePosts(payload rowsdomain.Payload) []domain.PostRecord {
	return defaultParser.Posts(payload)
}

// Metrics devolve nil quando nenhuma estratégia encontra ao menos um campo de
// métrica reconhecido. Um registro todo zerado nunca é inventado.
func (p *Parser) Metrics(payload rowsdomain.Payload) *domain.MetricsRecord {
	for _, s := range p.strategies {
		rows := s.Extract(payload)
		if len(rows) == 0 {
			continue
		}

		rec := rows[0]
		if !rec.has(metricsFields) {
			logrus.WithFields(logrus.Fields{
				"strategy":    s.Name,
				"keys":        payload.Keys(),
				"record_keys": rec.keys(),
			}).Warn("rows: payload shape matched but no metrics field was recognized")
			continue
		}

		logrus.WithField("strategy", s.Name).Debug("rows: metrics parsed")
		return p.buildMetrics(rec)
	}

	return nil
}

func (p *Parser) buildMetrics(rec Record) *domain.MetricsRecord {
	values := make(map[string]interface{}, len(metricsFields))
	for _, f := range metricsFields {
		if v, ok := rec.lookup(f.synonyms); ok {
			values[f.name] = v
		}
	}

	lastUpdated := p.now().UTC()
	if v, ok := rec.lookup(lastUpdatedSynonyms); ok {
		if t, ok := ParseTimestamp(v); ok {
			lastUpdated = t
		}
	}

	return &domain.MetricsRecord{
		Followers:     toCount(values["followers"]),
		Following:     toCount(values["following"]),
		Posts:         toCount(values["posts"]),
		Engagement:    toRate(values["engagement"]),
		Reach:         toCount(values["reach"]),
		Impressions:   toCount(values["impressions"]),
		ProfileViews:  toCount(values["profileViews"]),
		WebsiteClicks: toCount(values["websiteClicks"]),
		LastUpdated:   lastUpdated,
	}
}

// Posts devolve as publicações da primeira estratégia que produzir ao menos uma.
// Linhas sem ID, legenda, mídia, likes, comentários, compartilhamentos ou tipo
// são descartadas, o que impede que uma tabela de métricas vire publicação.
func (p *Parser) Posts(payload rowsdomain.Payload) []domain.PostRecord {
	for _, s := range p.strategies {
		rows := s.Extract(payload)
		if len(rows) == 0 {
			continue
		}

		posts := make([]domain.PostRecord, 0, len(rows))
		for _, rec := range rows {
			if !rec.has(postIdentity) {
				continue
			}
			posts = append(posts, p.buildPost(rec, len(posts)+1))
		}

		if len(posts) == 0 {
			logrus.WithFields(logrus.Fields{
				"strategy": s.Name,
				"keys":     payload.Keys(),
				"rows":     len(rows),
			}).Warn("rows: payload shape matched but no post field was recognized")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"strategy": s.Name,
			"posts":    len(posts),
		}).Debug("rows: posts parsed")
		return posts
	}

	return nil
}

func (p *Parser) buildPost(rec Record, position int) domain.PostRecord {
	get := func(name string) interface{} {
		for _, f := range postFields {
			if f.name == name {
				v, _ := rec.lookup(f.synonyms)
				return v
			}
		}
		return nil
	}

	id := toText(get("id"))
	if id == "" {
		id = "post-" + strconv.Itoa(position)
	}

	ts, ok := ParseTimestamp(get("timestamp"))
	if !ok {
		ts = p.now().UTC()
	}

	return domain.PostRecord{
		ID:        id,
		Caption:   toText(get("caption")),
		MediaURL:  toText(get("mediaUrl")),
		Likes:     toCount(get("likes")),
		Comments:  toCount(get("comments")),
		Shares:    toCount(get("shares")),
		Reach:     toCount(get("reach")),
		Timestamp: ts,
		MediaType: NormalizeMediaType(toText(get("mediaType"))),
	}
}

// NormalizeMediaType reduz os tipos da Graph API do Instagram aos três tipos exibidos
func NormalizeMediaType(raw string) domain.MediaType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "VIDEO", "REELS", "REEL":
		return domain.MediaVideo
	case "CAROUSEL", "CAROUSEL_ALBUM", "ALBUM":
		return domain.MediaCarousel
	default:
		return domain.MediaImage
	}
}
