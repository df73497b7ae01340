package main

import (
	"fmt"
	"os"

	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/pkg/log"
	"github.com/spf13/cobra"
)

// loadConfig é substituída nos testes
var loadConfig = config.NewConfig

var rootCmd = &cobra.Command{
	Use:   "rowsctl",
	Short: "Inspeciona a origem das métricas do Instagram no Rows",
	Long: `Inspeciona a origem das métricas do Instagram no Rows, usando a mesma
camada de aquisição da API.

Exemplos:
  rowsctl metrics
  rowsctl posts --limit 3
  rowsctl discover --source "https://rows.com/hotel/ops/instagram-abc123"
  rowsctl status`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		log.Configure(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("source", "", "sobrescreve ROWS_INSTAGRAM_SOURCE (URL, ID ou padrão de nome)")
	rootCmd.PersistentFlags().String("log-level", "warn", "nível de log (debug, info, warn, error)")

	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
