// favsync keeps a local copy of a user's favorite activities in sync with
// the SportLink API and prints it every time it changes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportLink/clients/sportlink"
	"sportLink/services/activity"
	"sportLink/services/favorites"
	"sportLink/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// syncEnv provides the environment for the root command.
type syncEnv struct {
	flagServer string
	flagToken  string
	flagUser   string
	flagWatch  time.Duration
	flagDebug  bool
}

func getRootCmd() *cobra.Command {
	env := &syncEnv{}
	cmd := &cobra.Command{
		Use:   "favsync",
		Short: "Sync a user's favorite activities",
		Long: `
Reconciles the favorite activities of a user against the SportLink API and
prints the cached activities as JSON after every change. With --watch the
favorites are polled until interrupted.`,
		SilenceUsage: true,
		RunE:         env.run,
	}

	cmd.Flags().StringVar(&env.flagServer, "server", "http://localhost:8080", "Base URL of the SportLink API")
	cmd.Flags().StringVar(&env.flagToken, "token", os.Getenv("SPORTLINK_TOKEN"), "Firebase ID token of the user")
	cmd.Flags().StringVar(&env.flagUser, "user", "", "Id of the user whose favorites are synced")
	cmd.Flags().DurationVar(&env.flagWatch, "watch", 0, "Poll interval; zero syncs once")
	cmd.Flags().BoolVar(&env.flagDebug, "debug", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (e *syncEnv) run(cmd *cobra.Command, _ []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if e.flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := sportlink.New(e.flagServer, e.flagToken)
	r := favorites.New(client)
	defer r.Close()

	out := cmd.OutOrStdout()
	unsubscribe := r.Subscribe(func(records []activity.Activity) {
		sorted := append([]activity.Activity(nil), records...)
		activity.SortByStart(sorted)
		if err := utils.PrettyPrint(out, sorted); err != nil {
			log.Error().Err(err).Msg("failed to print favorites")
		}
	})
	defer unsubscribe()

	if err := e.syncOnce(ctx, client, r); err != nil || e.flagWatch <= 0 {
		return err
	}

	ticker := time.NewTicker(e.flagWatch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := e.syncOnce(ctx, client, r); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Warn().Err(err).Msg("sync failed, will retry")
			}
		}
	}
}

func (e *syncEnv) syncOnce(ctx context.Context, client *sportlink.Client, r *favorites.Reconciler) error {
	ids, err := client.FavoriteIDs(ctx, e.flagUser)
	if err != nil {
		return err
	}
	if err := favorites.SyncWithRetry(ctx, r, ids, favorites.DefaultRetryPolicy); err != nil {
		return err
	}
	log.Debug().Int("favorites", len(ids)).Int("cached", len(r.Records())).Msg("synced")
	return nil
}
