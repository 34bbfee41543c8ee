// Package cartlog adapts cart change notifications into structured
// log records. The ledger itself stays free of I/O; the presentation
// layer subscribes this listener when it wants an audit trail of
// transitions.
package cartlog

import (
	"github.com/glamourbeauty/storefront/internal/domain"
	"github.com/glamourbeauty/storefront/internal/port"
	"go.uber.org/zap"
)

func Listener(logger *zap.Logger) port.CartListener {
	return func(c domain.Cart) {
		logger.Info("cart updated",
			zap.String("owner_id", c.OwnerID),
			zap.Int("lines", c.LineCount()),
			zap.Int("items", c.ItemCount()),
			zap.String("subtotal", c.Subtotal().Display()),
			zap.String("currency", c.Currency.String()),
		)
	}
}
