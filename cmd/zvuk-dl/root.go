package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/zvuk-downloader/internal/auth"
	"github.com/handiism/zvuk-downloader/internal/cache"
	"github.com/handiism/zvuk-downloader/internal/catalog"
	"github.com/handiism/zvuk-downloader/internal/config"
	"github.com/handiism/zvuk-downloader/internal/download"
	zvukhttp "github.com/handiism/zvuk-downloader/internal/http"
	"github.com/handiism/zvuk-downloader/internal/logging"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag  string
		threadsFlag int
		outputFlag  string
		formatFlag  int
		checkAuth   bool
		verboseFlag bool
	)

	cmd := &cobra.Command{
		Use:   "zvuk-dl [flags] LINK...",
		Short: "Download music, podcasts and audiobooks from Zvuk",
		Long: `zvuk-dl downloads audio from zvuk.com for offline listening.

It accepts track, release, playlist, artist, selection, podcast and
audiobook links, fetches the catalog metadata and saves tagged audio
files under the output path.

Authentication uses a browser session exported in Netscape cookies.txt
format. FLAC quality requires an active subscription.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !checkAuth {
				return cmd.Help()
			}

			cfg, err := buildConfig(cmd, configFlag, threadsFlag, outputFlag, formatFlag, verboseFlag)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, checkAuth, args)
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "config.toml", "configuration file path")
	cmd.Flags().IntVar(&threadsFlag, "threads", 0, "number of links and tracks downloaded at once")
	cmd.Flags().StringVar(&outputFlag, "output-path", "", "directory downloads are written to")
	cmd.Flags().IntVar(&formatFlag, "format", 0, "audio quality: 1 = MP3 128, 2 = MP3 320, 3 = FLAC")
	cmd.Flags().BoolVar(&checkAuth, "check-auth", false, "verify the session and subscription, then exit")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// buildConfig assembles the effective configuration: config file, then
// ZVUK_* environment variables, then command line flags. The result is
// validated here once and not modified afterwards.
func buildConfig(cmd *cobra.Command, path string, threads int, output string, format int, verbose bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("threads") {
		cfg.Threads = threads
	}
	if flags.Changed("output-path") {
		cfg.OutputPath = output
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, checkAuth bool, links []string) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session, err := auth.LoadSession(cfg.CookiesPath)
	if err != nil {
		// Under --check-auth the verdict is the output; a bad session
		// is reported, not returned.
		if checkAuth {
			fmt.Printf("authentication failed: %v\n", err)
			return nil
		}
		return err
	}
	logger = logger.With(zap.String("run_id", session.RunID))

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		logger.Warn("response cache unavailable, fetching everything fresh",
			zap.String("path", cfg.CachePath), zap.Error(err))
	} else {
		defer store.Close()
	}

	client := zvukhttp.NewClient(session, store, logger.Named("http"), cfg.RetryAttempts, cfg.RetryDelay())
	cat := catalog.NewClient(client, logger.Named("catalog"))

	if checkAuth {
		if err := cat.VerifySubscription(ctx); err != nil {
			fmt.Printf("authentication failed: %v\n", err)
			return nil
		}
		fmt.Println("authentication ok, subscription is active")
		return nil
	}

	manager, err := download.NewManager(cfg, client, cat, logger.Named("download"))
	if err != nil {
		return err
	}

	summary, err := manager.Run(ctx, links)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(summary))

	if ctx.Err() != nil {
		return context.Canceled
	}
	return summary.Err()
}
