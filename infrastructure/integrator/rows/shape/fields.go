package shape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Record é uma linha da tabela já com as chaves normalizadas
type Record map[string]interface{}

// field associa um campo canônico aos nomes de coluna aceitos
type field struct {
	name     string
	synonyms []string
}

var metricsFields = []field{
	{name: "followers", synonyms: []string{"followers", "follower", "followercount", "followerscount", "totalfollowers"}},
	{name: "following", synonyms: []string{"following", "followingcount", "follows", "followscount"}},
	{name: "posts", synonyms: []string{"posts", "postcount", "postscount", "totalposts", "mediacount"}},
	{name: "engagement", synonyms: []string{"engagement", "engagementrate", "engagementpercent", "er"}},
	{name: "reach", synonyms: []string{"reach", "totalreach", "accountsreached"}},
	{name: "impressions", synonyms: []string{"impressions", "totalimpressions", "impression"}},
	{name: "profileViews", synonyms: []string{"profileviews", "profileview", "profilevisits"}},
	{name: "websiteClicks", synonyms: []string{"websiteclicks", "websiteclick", "websitetaps", "linkclicks"}},
}

var lastUpdatedSynonyms = []string{"lastupdated", "updatedat", "updated", "asof", "date"}

var postFields = []field{
	{name: "id", synonyms: []string{"id", "postid", "mediaid"}},
	{name: "caption", synonyms: []string{"caption", "text", "description"}},
	{name: "mediaUrl", synonyms: []string{"mediaurl", "imageurl", "image", "url", "thumbnailurl", "permalink"}},
	{name: "likes", synonyms: []string{"likes", "like", "likecount", "likescount"}},
	{name: "comments", synonyms: []string{"comments", "comment", "commentcount", "commentscount"}},
	{name: "shares", synonyms: []string{"shares", "share", "sharecount", "sharescount"}},
	{name: "reach", synonyms: []string{"reach", "postreach"}},
	{name: "timestamp", synonyms: []string{"timestamp", "date", "postedat", "publishedat", "createdat", "time"}},
	{name: "mediaType", synonyms: []string{"mediatype", "type", "format"}},
}

// postIdentity são os campos que só uma publicação tem. Reach e data também
// aparecem em tabelas de métricas e não bastam para aceitar uma linha.
var postIdentity = without(postFields, "reach", "timestamp")

func without(fields []field, names ...string) []field {
	out := make([]field, 0, len(fields))
next:
	for _, f := range fields {
		for _, n := range names {
			if f.name == n {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

// NormalizeKey reduz um nome de coluna à forma usada na busca por sinônimos:
// minúsculas, apenas letras e dígitos. "Follower Count" vira "followercount".
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToLower(key) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (r Record) lookup(synonyms []string) (interface{}, bool) {
	for _, s := range synonyms {
		if v, ok := r[s]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r Record) has(fields []field) bool {
	for _, f := range fields {
		if _, ok := r.lookup(f.synonyms); ok {
			return true
		}
	}
	return false
}

func (r Record) keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// unwrapCell extrai o valor de células no formato {"value": ...}
func unwrapCell(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		if inner, ok := m["value"]; ok {
			return inner
		}
		if inner, ok := m["formatted_value"]; ok {
			return inner
		}
	}
	return v
}

// ToFloat converte números JSON e textos como "12,543", "4.2%" ou " 1 000 ".
// O segundo retorno é false quando o valor não é numérico.
func ToFloat(v interface{}) (float64, bool) {
	switch n := unwrapCell(v).(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.Map(func(r rune) rune {
			switch r {
			case ',', '%', '_', ' ', '\u00a0':
				return -1
			}
			return r
		}, strings.TrimSpace(n))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case bool:
		return 0, false
	}
	return 0, false
}

// toCount devolve um inteiro não negativo; valores inválidos viram 0
func toCount(v interface{}) int {
	f, ok := ToFloat(v)
	if !ok || f <= 0 {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(math.Round(f))
}

func toRate(v interface{}) float64 {
	f, ok := ToFloat(v)
	if !ok || f <= 0 {
		return 0
	}
	return f
}

func toText(v interface{}) string {
	switch s := unwrapCell(v).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// serialEpoch é o dia zero das datas seriais de planilha
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// maxSerialDate separa datas seriais (dias) de segundos Unix. 100000 dias
// passa de 2173, e 100000 segundos ainda é 2 de janeiro de 1970.
const maxSerialDate = 100000

// ParseTimestamp aceita os formatos de data mais comuns em planilhas, datas
// seriais (dias desde 1899-12-30, a fração é a hora do dia) e segundos Unix.
// O segundo retorno é false quando nada reconhece o valor.
func ParseTimestamp(v interface{}) (time.Time, bool) {
	v = unwrapCell(v)

	if f, ok := v.(float64); ok {
		return fromNumber(f)
	}

	s := toText(v)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromNumber(f)
	}

	return time.Time{}, false
}

func fromNumber(f float64) (time.Time, bool) {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if f < maxSerialDate {
		return serialEpoch.Add(time.Duration(math.Round(f * 24 * 60 * 60)) * time.Second), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}
