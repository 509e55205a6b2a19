package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
)

// ActivityLog feeds the dashboard activity panel and, when a publisher is
// configured, the activity exchange.
type ActivityLog struct {
	presenter Presenter
	publisher ActivityPublisher
	clock     Clock
	logger    *zap.Logger
}

func NewActivityLog(presenter Presenter, publisher ActivityPublisher, clock Clock, logger *zap.Logger) *ActivityLog {
	return &ActivityLog{presenter: presenter, publisher: publisher, clock: clock, logger: logger}
}

func (a *ActivityLog) Record(ctx context.Context, level entity.ActivityLevel, message string) entity.ActivityEntry {
	entry := entity.NewActivityEntry(level, message, a.clock())
	a.presenter.Activity(entry)

	if a.publisher == nil {
		return entry
	}
	if err := a.publisher.PublishActivity(ctx, entry); err != nil {
		a.logger.Warn("activity publish failed",
			zap.String("activity_id", entry.ID),
			zap.Error(err),
		)
	}
	return entry
}
