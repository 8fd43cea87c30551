package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordsprint/internal/config"
	"github.com/robalobadob/wordsprint/internal/daily"
	"github.com/robalobadob/wordsprint/internal/httpserver"
	"github.com/robalobadob/wordsprint/internal/words"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("wordsprint failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "wordsprint",
		Short:         "Word of the day game server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			c, err := config.Load()
			if err != nil {
				return err
			}
			setupLogging(c)
			cfg = c
			return nil
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	root.RunE = serve.RunE

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List corpus categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closeFn, err := openSource(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			corpus, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range words.Categories(corpus) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	var category, date string
	today := &cobra.Command{
		Use:   "today",
		Short: "Print the word of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDay(cfg, date, time.Now())
			if err != nil {
				return err
			}
			src, closeFn, err := openSource(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			corpus, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}
			sel, err := daily.Pick(corpus, category, day)
			if err != nil {
				return err
			}
			if sel.Fallback {
				log.Warn().Str("category", category).Msg("category matched no words; using full corpus")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sel.Date, sel.Word)
			return nil
		},
	}
	today.Flags().StringVar(&category, "category", "", "restrict to words tagged with this category")
	today.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today in DAILY_TZ)")

	root.AddCommand(serve, categories, today)
	return root
}

// runServe starts the API and blocks until SIGINT/SIGTERM.
func runServe(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeFn, err := openSource(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open word corpus")
		return err
	}
	defer closeFn()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	srv := httpserver.New(src, httpserver.Options{
		Origins:  cfg.ClientOrigins,
		Timeout:  cfg.RequestTimeout,
		Location: loc,
	})
	log.Info().
		Str("addr", cfg.Addr()).
		Str("words", cfg.WordsSource).
		Str("tz", loc.String()).
		Msg("starting wordsprint")
	if err := srv.Start(ctx, cfg.Addr()); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}

// resolveDay turns an optional YYYY-MM-DD flag into the selection date.
func resolveDay(cfg config.Config, date string, now time.Time) (time.Time, error) {
	if date != "" {
		return daily.ParseDate(date)
	}
	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, err
	}
	return now.In(loc), nil
}

// setupLogging configures the global zerolog logger from cfg.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
