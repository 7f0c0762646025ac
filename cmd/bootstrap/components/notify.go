package components

import (
	"letterdesk/internal/domain/notification"
	"letterdesk/internal/infra/pubsub"
	"letterdesk/internal/infra/sender"
	"letterdesk/internal/pkg/config"
	"letterdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		pubsub.NewBus,
		fx.Annotate(
			func(bus *pubsub.Bus) *pubsub.Bus { return bus },
			fx.As(new(shared.ChangePublisher)),
		),
		NewSenderRegistry,
	),
)

func NewSenderRegistry(cfg config.Config) *sender.Registry {
	reg := sender.NewRegistry()
	reg.Register(notification.ChannelInApp, sender.NewInAppSender())
	reg.Register(notification.ChannelEmail, sender.NewEmailSender(cfg.SMTP))
	if cfg.SMS.URL != "" {
		reg.Register(notification.ChannelSMS, sender.NewSMSSender(cfg.SMS))
	}
	if cfg.WhatsApp.URL != "" {
		reg.Register(notification.ChannelWhatsApp, sender.NewWhatsAppSender(cfg.WhatsApp))
	}
	return reg
}
