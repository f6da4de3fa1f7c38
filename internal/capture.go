package internal

import (
	"paybox/config"
	"paybox/entity"
)

// AuthorizationWithCapture authorizes and captures the payment in one
// step: PBX_AUTOSEULE=N tells the gateway that deferred capture is
// disabled.
type AuthorizationWithCapture struct {
	Authorization
}

func NewAuthorizationWithCapture(conf *config.Config, routes *Routes, signer *Signer) *AuthorizationWithCapture {
	c := &AuthorizationWithCapture{Authorization: *NewAuthorization(conf, routes, signer)}
	c.extend = func(p *entity.Parameters) {
		p.Set(FieldCaptureOnly, "N")
	}
	return c
}
