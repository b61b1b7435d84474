// Command chatcli runs a helper conversation in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dvhelper/backend/internal/config"
	"github.com/dvhelper/backend/internal/logging"
	"github.com/dvhelper/backend/internal/model/resource"
	"github.com/dvhelper/backend/internal/service/ai"
	"github.com/dvhelper/backend/internal/service/chat"
)

var (
	envFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "chatcli",
	Short: "Talk to the Domestic Violence Helper from a terminal",
	Long: `chatcli starts a single confidential conversation with the helper.

Type a message and press enter. Commands:
  /profile  show what the helper has learned about you
  /quit     end the conversation`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Setup(logLevel, "console")

	if err := godotenv.Load(envFile); err != nil {
		log.Warn().Err(err).Str("file", envFile).Msg("failed to load env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	completer, err := ai.NewCompleter(ctx, cfg.AI)
	if err != nil {
		log.Warn().Err(err).Msg("completion service unavailable")
		completer = ai.Unavailable{}
	}

	svc := chat.NewService(completer)
	conv, err := svc.CreateSession(ctx)
	if err != nil {
		return err
	}

	resources := resource.NewMemoryStore(resource.Seed())
	return newREPL(cmd.InOrStdin(), cmd.OutOrStdout(), resources).run(ctx, conv)
}
