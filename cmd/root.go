// Package cmd is the modelhub command line: the HTTP service and a few
// catalog and submission tools that share its configuration.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cropai-modelhub/config"
	"cropai-modelhub/pkg/logger"

	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
}

// NewRootCommand builds the modelhub command tree. Without a subcommand it
// runs serve.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "modelhub",
		Short: "CropAI model hub",
		Long:  "Serve the CropAI model hub API, browse the catalog and submit models from the command line.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(a))
	root.AddCommand(modelsCmd())
	root.AddCommand(cropsCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(submitCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	return logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logger.Sync()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCodeFromError(err)
	}
	return ExitSuccess
}
