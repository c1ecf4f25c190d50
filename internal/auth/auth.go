package auth

import (
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
	"github.com/ferdiebergado/gatekeep/internal/user"
)

type Provider struct {
	Signer  jwt.Signer
	UserSvc user.Service
}

type Module struct {
	svc     *Service
	handler *Handler
	guard   func(next http.Handler) http.Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

// Guard is the RequireToken middleware bound to the module's signer and users.
func (m *Module) Guard() func(next http.Handler) http.Handler {
	return m.guard
}

func NewModule(provider *Provider) *Module {
	svc := NewService(provider.UserSvc, provider.Signer)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
		guard:   RequireToken(provider.Signer, provider.UserSvc),
	}
}
