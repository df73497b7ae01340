package rows

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/rowsclient"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Hint é a dica de localização de uma origem: um ID conhecido ou um padrão de nome
type Hint struct {
	SpreadsheetID string
	Pattern       string
}

// MetricsTablePatterns devolve os padrões de nome de tabela de métricas, em ordem de prioridade
func MetricsTablePatterns(sourceKey string) []string {
	return []string{"metrics", "overview", "summary", sourceKey, "data", "sheet"}
}

// PostsTablePatterns devolve os padrões de nome de tabela de publicações, em ordem de prioridade
func PostsTablePatterns(sourceKey string) []string {
	return []string{"posts", "media", "feed", sourceKey, "data", "sheet"}
}

// DefaultFlightTimeout limita uma descoberta compartilhada quando nenhum outro prazo é informado
const DefaultFlightTimeout = 10 * time.Second

// Resolver descobre planilhas e tabelas pelo nome. Apenas as falhas de cache
// chegam ao cliente, e chamadas concorrentes para a mesma chave compartilham uma
// única descoberta.
//
// A descoberta compartilhada não herda o cancelamento de quem a iniciou: roda
// com prazo próprio, e cada chamador espera apenas enquanto o seu contexto vale.
type Resolver struct {
	client        rowsclient.Client
	cache         *ResolutionCache
	group         singleflight.Group
	flightTimeout time.Duration
	defaultPicks  atomic.Int64
	flagged       sync.Map // spreadsheet|padrões já contados como escolha padrão
}

type Option func(*Resolver)

// WithFlightTimeout define o prazo de cada descoberta compartilhada
func WithFlightTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.flightTimeout = d
		}
	}
}

func NewResolver(client rowsclient.Client, cache *ResolutionCache, opts ...Option) *Resolver {
	r := &Resolver{
		client:        client,
		cache:         cache,
		flightTimeout: DefaultFlightTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultPicks conta as resoluções que caíram no primeiro item da lista por falta
// de correspondência. Cada planilha ou combinação de tabela e padrões conta uma vez.
func (r *Resolver) DefaultPicks() int64 {
	return r.defaultPicks.Load()
}

// share executa fn uma única vez por chave entre chamadas concorrentes. fn recebe
// um contexto desligado do cancelamento de ctx e limitado por flightTimeout.
func (r *Resolver) share(ctx context.Context, key, endpoint string, fn func(ctx context.Context) (interface{}, error)) (interface{}, bool, error) {
	flightCtx := context.WithoutCancel(ctx)

	ch := r.group.DoChan(key, func() (v interface{}, err error) {
		defer func() {
			if p := recover(); p != nil {
				err = errors.Errorf("rows: discovery of %s panicked: %v", key, p)
			}
		}()

		fctx, cancel := context.WithTimeout(flightCtx, r.flightTimeout)
		defer cancel()

		return fn(fctx)
	})

	select {
	case <-ctx.Done():
		return nil, false, &rowsdomain.FetchError{Kind: rowsdomain.KindNetwork, Endpoint: endpoint, Detail: ctx.Err().Error()}
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	}
}

// ResolveSpreadsheet resolve a planilha da origem lógica key (ex.: "instagram")
func (r *Resolver) ResolveSpreadsheet(ctx context.Context, key string, hint Hint) (domain.SpreadsheetRef, error) {
	if ref, ok := r.cache.Spreadsheet(key); ok {
		return ref, nil
	}

	v, shared, err := r.share(ctx, "spreadsheet:"+key, "/spreadsheets", func(ctx context.Context) (interface{}, error) {
		if ref, ok := r.cache.Spreadsheet(key); ok {
			return ref, nil
		}

		ref, err := r.discoverSpreadsheet(ctx, key, hint)
		if err != nil {
			return nil, err
		}

		return r.cache.StoreSpreadsheet(key, ref), nil
	})
	if err != nil {
		return domain.SpreadsheetRef{}, err
	}

	ref := v.(domain.SpreadsheetRef)
	logrus.WithFields(logrus.Fields{
		"source":         key,
		"spreadsheet_id": ref.ID,
		"shared":         shared,
	}).Debug("rows: spreadsheet resolved")

	return ref, nil
}

func (r *Resolver) discoverSpreadsheet(ctx context.Context, key string, hint Hint) (domain.SpreadsheetRef, error) {
	if hint.SpreadsheetID != "" {
		info, err := r.client.GetSpreadsheet(ctx, hint.SpreadsheetID)
		if err != nil {
			return domain.SpreadsheetRef{}, err
		}

		ref := domain.SpreadsheetRef{ID: info.ID, Name: info.Name}
		if tables := toTableRefs(info.AllTables()); len(tables) > 0 {
			r.cache.StoreTables(ref.ID, tables)
		}

		return ref, nil
	}

	pattern := hint.Pattern
	if pattern == "" {
		pattern = key
	}

	items, err := r.client.ListSpreadsheets(ctx)
	if err != nil {
		return domain.SpreadsheetRef{}, err
	}

	if len(items) == 0 {
		return domain.SpreadsheetRef{}, errors.Wrap(rowsdomain.ErrDiscoveryFailed, "nenhuma planilha acessível")
	}

	for _, item := range items {
		if containsFold(item.Name, pattern) {
			logrus.WithFields(logrus.Fields{
				"pattern":          pattern,
				"spreadsheet_id":   item.ID,
				"spreadsheet_name": item.Name,
			}).Info("rows: spreadsheet found")
			return domain.SpreadsheetRef{ID: item.ID, Name: item.Name}, nil
		}
	}

	r.defaultPicks.Add(1)
	logrus.WithFields(logrus.Fields{
		"pattern":          pattern,
		"spreadsheet_id":   items[0].ID,
		"spreadsheet_name": items[0].Name,
		"candidates":       len(items),
	}).Warn("rows: no spreadsheet matched pattern, using first")

	return domain.SpreadsheetRef{ID: items[0].ID, Name: items[0].Name}, nil
}

// ResolveTable escolhe a tabela da planilha pelo primeiro padrão que casar
func (r *Resolver) ResolveTable(ctx context.Context, spreadsheetID string, patterns []string) (domain.TableRef, error) {
	tables, err := r.Tables(ctx, spreadsheetID)
	if err != nil {
		return domain.TableRef{}, err
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		for _, t := range tables {
			if containsFold(t.Name, pattern) {
				return t, nil
			}
		}
	}

	if _, seen := r.flagged.LoadOrStore(spreadsheetID+"|"+strings.Join(patterns, ","), struct{}{}); !seen {
		r.defaultPicks.Add(1)
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": spreadsheetID,
			"patterns":       patterns,
			"table_id":       tables[0].ID,
			"table_name":     tables[0].Name,
		}).Warn("rows: no table matched patterns, using first")
	}

	return tables[0], nil
}

// Tables devolve as tabelas da planilha, descobrindo-as uma única vez
func (r *Resolver) Tables(ctx context.Context, spreadsheetID string) ([]domain.TableRef, error) {
	if tables, ok := r.cache.Tables(spreadsheetID); ok {
		return tables, nil
	}

	v, _, err := r.share(ctx, "tables:"+spreadsheetID, "/spreadsheets/"+spreadsheetID, func(ctx context.Context) (interface{}, error) {
		if tables, ok := r.cache.Tables(spreadsheetID); ok {
			return tables, nil
		}

		info, err := r.client.GetSpreadsheet(ctx, spreadsheetID)
		if err != nil {
			return nil, err
		}

		tables := toTableRefs(info.AllTables())
		if len(tables) == 0 {
			return nil, errors.Wrapf(rowsdomain.ErrDiscoveryFailed, "planilha %s sem tabelas", spreadsheetID)
		}

		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": spreadsheetID,
			"tables":         len(tables),
		}).Info("rows: tables discovered")

		return r.cache.StoreTables(spreadsheetID, tables), nil
	})
	if err != nil {
		return nil, err
	}

	stored := v.([]domain.TableRef)
	out := make([]domain.TableRef, len(stored))
	copy(out, stored)
	return out, nil
}

func toTableRefs(tables []rowsdomain.Table) []domain.TableRef {
	out := make([]domain.TableRef, 0, len(tables))
	for _, t := range tables {
		out = append(out, domain.TableRef{ID: t.ID, Name: t.Name})
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
