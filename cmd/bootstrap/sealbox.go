package bootstrap

import (
	"resort-checkout/internal/pkg/config"
	"resort-checkout/internal/pkg/errs"
	"resort-checkout/internal/pkg/sealbox"

	"go.uber.org/fx"
)

var SealBoxModule = fx.Module("sealbox",
	fx.Provide(
		NewSealBox,
	),
)

func NewSealBox(cfg config.Config) (*sealbox.Box, error) {
	box, err := sealbox.NewFromHex(cfg.Mailbox.Secret)
	if err != nil {
		return nil, errs.Wrap(err, "invalid MAILBOX_SECRET")
	}
	return box, nil
}
