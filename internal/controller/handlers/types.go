package handlers

import (
	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/controller/state"
	"github.com/bekzodov/jadval-bot/internal/scheduler"
	"github.com/bekzodov/jadval-bot/internal/service"
	"github.com/bekzodov/jadval-bot/internal/telegram"
)

// Handlers carries every dependency the update handlers need.
type Handlers struct {
	users     *service.UserService
	schedule  *service.ScheduleService
	delivery  *service.DeliveryService
	importer  *service.ImportService
	reminders *scheduler.Scheduler
	states    *state.Manager
	courier   *telegram.Courier
	maxFile   int64
	logger    *zap.Logger
}

func New(
	users *service.UserService,
	schedule *service.ScheduleService,
	delivery *service.DeliveryService,
	importer *service.ImportService,
	reminders *scheduler.Scheduler,
	states *state.Manager,
	courier *telegram.Courier,
	maxFile int64,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		users:     users,
		schedule:  schedule,
		delivery:  delivery,
		importer:  importer,
		reminders: reminders,
		states:    states,
		courier:   courier,
		maxFile:   maxFile,
		logger:    logger,
	}
}
