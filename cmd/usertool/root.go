package main

import (
	"fmt"
	"strconv"

	"blogapi/cmd/internal/config"
	"blogapi/cmd/internal/domain/sqlite"
	"blogapi/cmd/internal/domain/sqlite/repository"
	"blogapi/cmd/internal/service"
	"blogapi/cmd/internal/utils/validators"

	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	dbPath   string
	accounts *service.AccountService
)

var rootCmd = &cobra.Command{
	Use:          "usertool",
	Short:        "Provision blog users and mint their access tokens",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return err
		}

		if dbPath == "" {
			dbPath = cfg.DBPath
		}

		db, err := sqlite.Init(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database at %s: %w", dbPath, err)
		}

		accounts = service.NewAccountService(repository.NewUserRepository(db), validators.New())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (defaults to DB_PATH)")
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}
