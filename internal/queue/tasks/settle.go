package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/services"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/logger"
)

const TypeSettleBookings = "booking:settle"

// SettlePayload is the task payload for booking settlement. A zero Now means
// the time the task is processed.
type SettlePayload struct {
	Now time.Time `json:"now,omitempty"`
}

// NewSettleTask builds a settle task. Pass the zero time to settle against
// the clock of the worker that processes it; periodic tasks must do so.
func NewSettleTask(now time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(SettlePayload{Now: now})
	if err != nil {
		return nil, fmt.Errorf("marshal settle payload: %w", err)
	}
	return asynq.NewTask(TypeSettleBookings, payload, asynq.MaxRetry(3), asynq.Unique(time.Minute)), nil
}

// SettleTaskHandler completes and cancels bookings whose period has passed.
type SettleTaskHandler struct {
	bookings services.BookingService
	clock    func() time.Time
}

func NewSettleTaskHandler(bookings services.BookingService) *SettleTaskHandler {
	return &SettleTaskHandler{bookings: bookings, clock: time.Now}
}

func (h *SettleTaskHandler) HandleSettle(ctx context.Context, t *asynq.Task) error {
	var p SettlePayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.L().Error("invalid settle task payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
	}
	now := p.Now
	if now.IsZero() {
		now = h.clock()
	}

	res, err := h.bookings.SettleBookings(ctx, now.UTC())
	if err != nil {
		logger.L().Error("settle bookings failed", zap.Error(err))
		return appErr.Wrap(err, appErr.CodeInternal, "settle bookings failed")
	}

	logger.L().Info("settle task done",
		zap.String("task_type", t.Type()),
		zap.Int64("completed", res.Completed),
		zap.Int64("canceled", res.Canceled),
	)
	return nil
}
