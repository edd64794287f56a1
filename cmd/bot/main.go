package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/art-quiz-bot/internal/config"
	"github.com/aliskhannn/art-quiz-bot/internal/delivery/rest"
	"github.com/aliskhannn/art-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/art-quiz-bot/internal/infra/quizapi"
	"github.com/aliskhannn/art-quiz-bot/internal/logger"
	"github.com/aliskhannn/art-quiz-bot/internal/service"
	"github.com/aliskhannn/art-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(shutdown(lg, run(cfg, lg)))
}

// shutdown logs the outcome of run, flushes the logger and returns the exit code.
func shutdown(lg *zap.Logger, err error) int {
	code := 0
	if err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("application stopped with error", zap.Error(err))
		code = 1
	} else {
		lg.Info("shutdown complete")
	}

	_ = lg.Sync()
	return code
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := entities.ParseLocation(cfg.Quiz.Timezone)
	if err != nil {
		return err
	}

	policy, err := entities.ParseGapPolicy(cfg.Streak.GapPolicy)
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer st.close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	// Initialize services.
	quizService := service.NewQuizService(
		quizapi.NewClient(cfg.Quiz.BaseURL, cfg.Quiz.Timeout),
		st.quizCache,
		loc,
		lg,
	)
	streakService := service.NewStreakService(st.streaks, st.tx, policy, lg)
	sessionService := service.NewSessionService(
		quizService,
		streakService,
		storage.NewSessionStorage(),
		cfg.Quiz.SessionTTL,
		lg,
	)
	userService := service.NewUserService(st.users, lg)
	announcer := service.NewAnnouncer(quizService, st.users, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		sessionService,
		streakService,
		quizService,
		storage.NewAnnouncementStorage(),
	)
	announcer.SetNotifier(handler)

	if err := handler.SetCommands(); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	scheduler := service.NewScheduler(loc, lg)
	if err := scheduler.Add(ctx, "prefetch", cfg.Scheduler.Prefetch, quizService.Prefetch); err != nil {
		return err
	}
	if err := scheduler.Add(ctx, "announce", cfg.Scheduler.Announce, func(ctx context.Context) error {
		_, err := announcer.AnnounceToday(ctx)
		return err
	}); err != nil {
		return err
	}
	if err := scheduler.Add(ctx, "sweep", cfg.Scheduler.Sweep, func(context.Context) error {
		sessionService.Sweep()
		return nil
	}); err != nil {
		return err
	}

	if err := quizService.Prefetch(ctx); err != nil {
		lg.Warn("initial quiz prefetch failed", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return handler.Run(gctx) })
	g.Go(func() error {
		scheduler.Start(gctx)
		return nil
	})

	if cfg.HTTP.Addr != "" {
		router := rest.NewRouter(rest.NewHandler(quizService, streakService, lg), lg)
		server := rest.NewServer(cfg.HTTP.Addr, router, lg)
		g.Go(func() error { return server.Run(gctx) })
	}

	return g.Wait()
}
