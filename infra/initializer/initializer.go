// Package initializer wires configuration, logging, the database and the
// repositories into a Deps bundle consumed by the web layer.
package initializer

import (
	"log/slog"

	"github.com/amirasaad/accounts/config"
	"github.com/amirasaad/accounts/infra"
	accountinfra "github.com/amirasaad/accounts/infra/repository/account"
	accountrepo "github.com/amirasaad/accounts/pkg/repository/account"
	accountsvc "github.com/amirasaad/accounts/pkg/service/account"
	"gorm.io/gorm"
)

// Deps carries every constructed dependency. Handlers receive what they
// need from here instead of reaching for globals.
type Deps struct {
	Config         *config.AppConfig
	Logger         *slog.Logger
	DB             *gorm.DB
	AccountRepo    accountrepo.Repository
	AccountService *accountsvc.Service
}

// InitializeDependencies connects to the database, migrates the schema and
// builds the repository and service graph.
func InitializeDependencies(cfg *config.AppConfig, logger *slog.Logger) (*Deps, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&accountinfra.Account{}); err != nil {
		return nil, err
	}

	repo := accountinfra.New(db)
	svc := accountsvc.New(repo, logger)

	return &Deps{
		Config:         cfg,
		Logger:         logger,
		DB:             db,
		AccountRepo:    repo,
		AccountService: svc,
	}, nil
}
