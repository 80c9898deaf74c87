package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bekzodov/jadval-bot/internal/formatting"
	"github.com/bekzodov/jadval-bot/internal/model"
)

// broadcastThrottle is the fixed delay between consecutive broadcast
// sends, keeping the bot under Telegram's flood limits.
const broadcastThrottle = 120 * time.Millisecond

// Courier is the outbound side of the message transport. A send error
// classified Permanent means the recipient is permanently unreachable.
type Courier interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, name string, data []byte, caption string) error
	SendBroadcast(ctx context.Context, chatID int64, b model.Broadcast) error
	Permanent(err error) bool
}

// DeliveryService turns schedule data into outbound messages. Every
// send funnels through it so permanent delivery failures always clean
// up the registry and the recipient's reminder timer.
type DeliveryService struct {
	schedule *ScheduleService
	users    *UserService
	courier  Courier
	loc      *time.Location
	log      *zap.Logger

	cancelTimer func(chatID int64)
	throttle    time.Duration
}

func NewDeliveryService(schedule *ScheduleService, users *UserService, courier Courier, loc *time.Location, log *zap.Logger) *DeliveryService {
	return &DeliveryService{
		schedule: schedule,
		users:    users,
		courier:  courier,
		loc:      loc,
		log:      log,
		throttle: broadcastThrottle,
	}
}

// BindScheduler wires the reminder-timer cancellation used on
// permanent delivery failures. Set once during startup.
func (s *DeliveryService) BindScheduler(cancel func(chatID int64)) {
	s.cancelTimer = cancel
}

// SendDay sends one day's schedule to chatID. An empty or absent
// weekend day produces no message at all.
func (s *DeliveryService) SendDay(ctx context.Context, chatID int64, day string) {
	entries, _ := s.schedule.Get(day)
	for _, chunk := range formatting.DayMessages(day, entries) {
		if !s.send(ctx, chatID, chunk) {
			return
		}
	}
}

// SendToday sends the current day's schedule in the bot's timezone.
func (s *DeliveryService) SendToday(ctx context.Context, chatID int64) {
	s.SendDay(ctx, chatID, model.DayAt(time.Now().In(s.loc)))
}

// SendTomorrow sends the following day's schedule.
func (s *DeliveryService) SendTomorrow(ctx context.Context, chatID int64) {
	s.SendDay(ctx, chatID, model.Tomorrow(time.Now().In(s.loc)))
}

// SendWeek sends the whole week in canonical day order.
func (s *DeliveryService) SendWeek(ctx context.Context, chatID int64) {
	week := s.schedule.Week()
	for _, day := range model.Days {
		for _, chunk := range formatting.DayMessages(day, week[day]) {
			if !s.send(ctx, chatID, chunk) {
				return
			}
		}
	}
}

// SendWeekImage renders the week grid and sends it as a photo.
func (s *DeliveryService) SendWeekImage(ctx context.Context, chatID int64) error {
	today := model.DayAt(time.Now().In(s.loc))
	png, err := formatting.WeekImage(s.schedule.Week(), today)
	if err != nil {
		return err
	}
	if err := s.courier.SendPhoto(ctx, chatID, "jadval.png", png, "📆 Haftalik jadval"); err != nil {
		s.handleSendError(chatID, err)
		return err
	}
	return nil
}

// Broadcast forwards an admin payload to every registered non-admin
// user sequentially with a fixed throttle, and returns the number of
// successful deliveries. Permanently unreachable users are dropped.
func (s *DeliveryService) Broadcast(ctx context.Context, b model.Broadcast) int {
	sent := 0
	for _, chatID := range s.users.Recipients() {
		if err := s.courier.SendBroadcast(ctx, chatID, b); err != nil {
			s.handleSendError(chatID, err)
		} else {
			sent++
		}

		select {
		case <-ctx.Done():
			return sent
		case <-time.After(s.throttle):
		}
	}
	return sent
}

// send delivers one chunk; it reports whether delivery to this
// recipient should continue.
func (s *DeliveryService) send(ctx context.Context, chatID int64, text string) bool {
	if err := s.courier.SendText(ctx, chatID, text); err != nil {
		s.handleSendError(chatID, err)
		return false
	}
	return true
}

func (s *DeliveryService) handleSendError(chatID int64, err error) {
	if s.courier.Permanent(err) {
		s.log.Warn("recipient permanently unreachable, removing",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		s.users.Remove(chatID)
		if s.cancelTimer != nil {
			s.cancelTimer(chatID)
		}
		return
	}
	s.log.Error("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
}
