package main

import (
	"os"

	"go-leave/internal/app"
	"go-leave/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataFile string
	auditLog string
	noAI     bool
)

var rootCmd = &cobra.Command{
	Use:   "leave",
	Short: "Interactive leave management console",
	Long: `leave runs the interactive leave management console.

Employees log in by name and type free-text requests (request, cancel,
balance, history); administrators manage employee records, holidays and
pending approvals through a menu. State lives in a single JSON document.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if dataFile != "" {
			cfg.DataFile = dataFile
		}
		if auditLog != "" {
			cfg.AuditLog = auditLog
		}
		if noAI {
			cfg.AIDisabled = true
		}

		c, err := app.BuildConsole(cmd.Context(), cfg, os.Stdin, os.Stdout, zap.L())
		if err != nil {
			return err
		}
		return c.Run(cmd.Context())
	},
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	rootCmd.Flags().StringVar(&dataFile, "data", "", "path to the JSON data file (default employees.json)")
	rootCmd.Flags().StringVar(&auditLog, "log", "", "path to the audit log (default system.log)")
	rootCmd.Flags().BoolVar(&noAI, "no-ai", false, "disable the remote extractor and use rule-based parsing only")

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("console exited with error", zap.Error(err))
	}
}
