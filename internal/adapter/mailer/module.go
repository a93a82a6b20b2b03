package mailer

import (
	"go.uber.org/fx"

	"github.com/ekeukwu/market/internal/config"
)

// Module wires the SMTP sender for dependency injection.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
}

func newSender(p senderParams) Sender {
	return NewSMTPSender(Config{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		Username: p.Config.SMTPUsername,
		Password: p.Config.SMTPPassword,
		From:     p.Config.SMTPFrom,
	})
}
