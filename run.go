package main

import (
	"context"
	"errors"
	"fmt"
	"memberbot/internal/adapters/handler"
	"memberbot/internal/adapters/scheduler"
	"memberbot/internal/adapters/sender"
	"memberbot/internal/adapters/store"
	"memberbot/internal/config"
	"memberbot/internal/core/domain"
	"memberbot/internal/core/domain/command"
	"memberbot/internal/core/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and start handling messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runBot(cmd.Context(), cfg)
		},
	}
}

func runBot(ctx context.Context, cfg *config.Config) error {
	log.Info().Msg("starting memberbot...")

	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.CloseDB(db)

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed initializing discord session: %w", err)
	}

	// guilds keeps the channel cache filled so channel names resolve without a REST call
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	s := sender.NewDiscord(session)
	applications := service.NewApplicationService(store.NewSQLite(db), s)
	authorizer := service.NewAuthorizer(cfg.Discord.Moderators)

	registry := &command.Registry{}
	registry.Register(command.NewPing(s, "ping"))
	registry.Register(command.NewHelp(registry, s, cfg.Discord.Prefix, "help"))
	registry.Register(command.NewApplication(applications, s, "application"))
	registry.Register(command.NewReview(applications, authorizer, s, domain.Accepted, "accept"))
	registry.Register(command.NewReview(applications, authorizer, s, domain.Rejected, "reject"))
	registry.Register(command.NewPending(applications, s, "pending"))

	executor := service.NewExecutor(registry, cfg.Handler.Timeout)
	executor.OnExecuted(service.NewCommandResultReporter(s).OnExecuted)

	router := service.NewMessageRouter(cfg.Discord.Prefix, applications, executor)
	dispatcher := handler.NewDispatcher(router, cfg.Handler.Workers, cfg.Handler.QueueSize, cfg.Handler.Timeout)

	session.AddHandler(handler.NewMessage(handler.NewSessionChannels(session), dispatcher).Handle)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.String()).Int("guilds", len(r.Guilds)).Msg("connected to discord")
	})

	var cron *scheduler.Cron
	if cfg.Applications.DigestCron != "" {
		cron, err = scheduler.NewCron()
		if err != nil {
			return err
		}

		digest := service.NewPendingDigest(applications, s, cfg.Applications.DigestChannelID)
		err = cron.Add(ctx, "pending-digest", cfg.Applications.DigestCron, digest.Run)
		if err != nil {
			return err
		}

		log.Info().Int("jobs", cron.Jobs()).Msg("scheduler configured")
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return dispatcher.Run(gCtx)
	})

	if cron != nil {
		g.Go(func() error {
			return cron.Run(gCtx)
		})
	}

	g.Go(func() error {
		err := session.Open()
		if err != nil {
			return fmt.Errorf("failed to connect to discord: %w", err)
		}

		log.Info().Str("prefix", cfg.Discord.Prefix).Msg("bot listening")

		<-gCtx.Done()
		log.Info().Msg("shutting down")

		return session.Close()
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().Msg("memberbot stopped")

	return nil
}
