package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/offstore/offstore-api/models"
	"go.uber.org/zap"
)

// Notifier posts a copy of every placed order to a configured webhook so
// an administrator hears about new orders without polling. Best-effort:
// failures are logged, never surfaced to the shopper.
type Notifier struct {
	client *resty.Client
	url    string
	log    *zap.Logger
}

func NewNotifier(url string, log *zap.Logger) *Notifier {
	return &Notifier{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
		log:    log,
	}
}

func (n *Notifier) OrderPlaced(order *models.Order) {
	if n.url == "" {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		Post(n.url)

	if err != nil {
		n.log.Warn("order webhook failed", zap.Uint("orderId", order.ID), zap.Error(err))
		return
	}
	if resp.StatusCode() >= 300 {
		n.log.Warn("order webhook rejected",
			zap.Uint("orderId", order.ID),
			zap.Int("status", resp.StatusCode()))
	}
}
