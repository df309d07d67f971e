package bootstrap

import (
	"clinic-agenda/internal/infra/gateway"
	"clinic-agenda/internal/infra/notify"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *gateway.MercadoPagoClient {
	return gateway.NewMercadoPagoClient(cfg.Gateway, cfg.Gateway.CallbackURL)
}

func NewNotifier(cfg config.Config) *notify.WebhookNotifier {
	return notify.NewWebhookNotifier(cfg.Booking.NotifyURL)
}
