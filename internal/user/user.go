package user

import (
	"database/sql"

	"github.com/ferdiebergado/gatekeep/internal/platform/hash"
)

// Module bundles the user service and its HTTP handler over one repository.
type Module struct {
	repo    Repository
	svc     *service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

//nolint:ireturn //Consumers depend on the interface.
func (m *Module) Service() Service {
	return m.svc
}

func NewModule(repo Repository, hasher hash.Hasher) *Module {
	svc := NewService(repo, hasher)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}

// NewRepository picks the postgres repository when conn is set, otherwise the
// in-memory one.
//
//nolint:ireturn //The concrete repository depends on the configured store.
func NewRepository(conn *sql.DB) Repository {
	if conn == nil {
		return NewMemoryRepository()
	}
	return NewSQLRepository(conn)
}
