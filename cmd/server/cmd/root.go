package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"leadsync/internal/config"
	"leadsync/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "leadsync",
	Short: "Leadsync - сервер синхронизации офлайн-захвата контактов",
	Long: `Leadsync принимает пакеты create/update/delete операций, накопленных
мобильными клиентами офлайн, применяет их к общему хранилищу контактов,
находит записи, измененные с обеих сторон, и разрешает конфликты по стратегиям.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.NewConfig()
		log = logger.New(cfg.Env)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
