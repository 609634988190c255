package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/app/runner"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/config"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/logger"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/report"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/adjustment"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/command"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "credit-debit <command-file | command...>",
		Short: "Credit and debit main and bonus balances of subscriber lines",
		Long: "Operator tool that adjusts a prepaid subscriber's main and bonus balances " +
			"through the eSM SOAP interface. The argument is either a file of " +
			"newline-delimited commands or one inline command, e.g. " +
			`"2348011234567 MAIN -500 BONUS +200".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	now := time.Now()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		return err
	}

	logDir := filepath.Join(cfg.Logging.Dir, now.Format(consts.LogMonthLayout))
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}
	logFile := filepath.Join(logDir, now.Format(consts.LogFileLayout))
	if err := logger.Init(cfg.Logging.LogLevel, logFile); err != nil {
		return fmt.Errorf("could not initialise logger: %w", err)
	}
	defer logger.Sync()
	logger.Info("log execution directory is at path %s", logDir)

	// One session per run: opened here, closed exactly once on the way out
	// whatever happens to individual commands.
	esm := downstreams.NewESMService(cfg)
	if err := esm.Login(ctx); err != nil {
		return err
	}
	defer func() {
		if err := esm.Logout(ctx); err == nil {
			logger.Info("session properly closed and tool execution ended")
		}
	}()
	logger.Info("logged in successfully")

	arg := args[0]
	if len(args) > 1 {
		arg = strings.Join(args, " ")
	}

	writer, err := report.NewWriter(logDir, reportInputName(arg), now)
	if err != nil {
		return err
	}

	engine := adjustment.NewEngine(esm, esm, nil)
	return runner.New(esm, engine, writer).Run(ctx, arg)
}

func reportInputName(arg string) string {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return filepath.Base(arg)
	}
	// Inline command: name the report after the prefixed msisdn.
	if cmd, err := command.Parse(arg); err == nil {
		return cmd.Msisdn
	}
	return "inline"
}
