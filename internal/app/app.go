package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/config"
	"github.com/bekzodov/jadval-bot/internal/controller"
	"github.com/bekzodov/jadval-bot/internal/controller/handlers"
	"github.com/bekzodov/jadval-bot/internal/controller/state"
	"github.com/bekzodov/jadval-bot/internal/repository"
	"github.com/bekzodov/jadval-bot/internal/scheduler"
	"github.com/bekzodov/jadval-bot/internal/service"
	"github.com/bekzodov/jadval-bot/internal/telegram"
)

// Run wires the whole application and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	scheduleRepo := repository.NewScheduleRepository(cfg.DataDir)
	userRepo := repository.NewUserRepository(cfg.DataDir)

	scheduleService, err := service.NewScheduleService(scheduleRepo, logger)
	if err != nil {
		return fmt.Errorf("init schedule service: %w", err)
	}
	userService, err := service.NewUserService(userRepo, cfg.AdminIDs, cfg.DefaultNotifyTime, logger)
	if err != nil {
		return fmt.Errorf("init user service: %w", err)
	}

	// The default handler closes over h, which is assigned before
	// polling starts in bot.Start. bot.New itself never dispatches.
	var h *handlers.Handlers
	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h != nil {
				h.HandleUpdate(ctx, b, update)
			}
		}))
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	courier := telegram.NewCourier(b, cfg.MaxFileSizeBytes)
	deliveryService := service.NewDeliveryService(scheduleService, userService, courier, loc, logger)
	reminders := scheduler.New(loc, deliveryService.SendDay, logger)
	deliveryService.BindScheduler(reminders.Cancel)
	importService := service.NewImportService(scheduleService, logger)

	h = handlers.New(
		userService,
		scheduleService,
		deliveryService,
		importService,
		reminders,
		state.NewManager(),
		courier,
		cfg.MaxFileSizeBytes,
		logger,
	)

	botController := controller.NewBotController(b, h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := botController.RegisterHandlers(ctx); err != nil {
		return fmt.Errorf("register handlers: %w", err)
	}

	reminders.Restore(userService.All())
	logger.Info("reminder timers restored", zap.Int("active", reminders.Active()))

	notifyAdmins(ctx, courier, cfg.AdminIDs, logger)

	if err := botController.Start(ctx); err != nil {
		return err
	}

	reminders.Stop()
	logger.Info("bot stopped")
	return nil
}

// notifyAdmins sends a startup notice so admins see restarts.
func notifyAdmins(ctx context.Context, courier *telegram.Courier, adminIDs []int64, logger *zap.Logger) {
	for _, id := range adminIDs {
		if err := courier.SendText(ctx, id, "🤖 Bot ishga tushdi."); err != nil {
			logger.Warn("startup notice failed", zap.Int64("admin_id", id), zap.Error(err))
		}
	}
}
