package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/gatekeep/internal/config"
	"github.com/ferdiebergado/gatekeep/internal/platform/hash"
	"github.com/ferdiebergado/gatekeep/internal/platform/jwt"
	"github.com/ferdiebergado/gatekeep/internal/platform/router"
	"github.com/ferdiebergado/gatekeep/internal/platform/validation"
)

// Provider holds the infrastructure the modules are built on. A nil DB selects
// the in-memory credential store.
type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
}

func NewProvider(cfg *config.Config, dbConn *sql.DB) (*Provider, error) {
	signer, err := jwt.NewGolangJWTSigner(cfg.JWT, cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("new jwt signer: %w", err)
	}

	hasher, err := hash.NewBcryptHasher(cfg.Bcrypt.Cost)
	if err != nil {
		return nil, fmt.Errorf("new bcrypt hasher: %w", err)
	}

	provider := &Provider{
		DB:        dbConn,
		Signer:    signer,
		Hasher:    hasher,
		Router:    router.NewGoexpressRouter(),
		Validator: validation.NewGoPlaygroundValidator(),
	}

	return provider, nil
}
