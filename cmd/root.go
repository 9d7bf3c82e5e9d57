package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/config"
	"github.com/grit-analytics/opportunity-map/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "opportunity-map",
	Short: "Census-tract opportunity index map builder",
	Long:  "Ingests an opportunity profile and tract boundaries, resolves multi-district tracts, and emits a self-contained interactive map.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initStore opens and migrates the local run-history database.
func initStore(cmd *cobra.Command) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
