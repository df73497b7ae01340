package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/rowsclient"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/internal/usecases/instagram"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// stack é a camada de aquisição montada a partir da configuração
type stack struct {
	cfg      *config.Config
	client   rowsclient.Client
	resolver *rows.Resolver
	service  instagram.Insighter
}

func newStack(cmd *cobra.Command) (*stack, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		cfg.Rows.InstagramHint = source
	}

	client := rowsclient.NewClient(cfg)
	resolver := rows.NewResolver(client, rows.NewResolutionCache(), rows.WithFlightTimeout(cfg.Rows.RequestTimeout))

	return &stack{
		cfg:      cfg,
		client:   client,
		resolver: resolver,
		service:  instagram.NewService(cfg, client, resolver),
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- metrics ---

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Mostra as métricas da conta como a API as serviria",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStack(cmd)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), s.service.GetMetrics(cmd.Context()))
	},
}

// --- posts ---

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Mostra as publicações recentes como a API as serviria",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must be zero or positive")
		}

		s, err := newStack(cmd)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), s.service.GetPosts(cmd.Context(), limit))
	},
}

func init() {
	postsCmd.Flags().Int("limit", instagram.DefaultPostsLimit, "quantidade de publicações")
}

// --- discover ---

type discovery struct {
	Spreadsheet  domain.SpreadsheetRef `json:"spreadsheet"`
	Tables       []domain.TableRef     `json:"tables"`
	MetricsTable *domain.TableRef      `json:"metrics_table,omitempty"`
	PostsTable   *domain.TableRef      `json:"posts_table,omitempty"`
	DefaultPicks int64                 `json:"default_picks"`
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Resolve a planilha e as tabelas da origem e mostra o que foi escolhido",
	Long: `Resolve a planilha e as tabelas da origem do Instagram e mostra o que foi
escolhido. Diferente de metrics e posts, erros da API do Rows são devolvidos em
vez de trocados por dados sintéticos.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStack(cmd)
		if err != nil {
			return err
		}

		out, err := discover(cmd.Context(), s)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), out)
	},
}

func discover(ctx context.Context, s *stack) (*discovery, error) {
	source, ok := s.cfg.Rows.Source()
	if !ok {
		return nil, fmt.Errorf("instagram source is not configured: set ROWS_API_KEY and ROWS_INSTAGRAM_SOURCE")
	}

	hint := rows.Hint{SpreadsheetID: source.SpreadsheetID, Pattern: source.Pattern}
	ref, err := s.resolver.ResolveSpreadsheet(ctx, instagram.SourceKey, hint)
	if err != nil {
		return nil, fmt.Errorf("resolving spreadsheet: %w", err)
	}

	tables, err := s.resolver.Tables(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("listing tables of %s: %w", ref.ID, err)
	}

	out := &discovery{Spreadsheet: ref, Tables: tables}

	if table, err := s.resolver.ResolveTable(ctx, ref.ID, rows.MetricsTablePatterns(instagram.SourceKey)); err == nil {
		out.MetricsTable = &table
	}
	if table, err := s.resolver.ResolveTable(ctx, ref.ID, rows.PostsTablePatterns(instagram.SourceKey)); err == nil {
		out.PostsTable = &table
	}
	out.DefaultPicks = s.resolver.DefaultPicks()

	return out, nil
}

// --- status ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra o estado da integração com o Rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStack(cmd)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), s.service.Status(cmd.Context()))
	},
}
