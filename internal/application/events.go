package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/domain/event"
)

const publishTimeout = 3 * time.Second

// publish delivers e on a best-effort basis. The store operation has already
// succeeded, so a delivery failure is logged and not returned.
func publish(ctx context.Context, pub event.Publisher, logger *logrus.Logger, e event.Event) {
	if pub == nil {
		return
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := pub.PublishJSON(c, e); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"event":     e.Type,
			"entity_id": e.EntityID,
		}).Warn("event publish failed")
	}
}
