// Package account provides business logic for account lifecycle operations.
package account

import (
	"context"
	"log/slog"

	accountdomain "github.com/amirasaad/accounts/pkg/domain/account"
	"github.com/amirasaad/accounts/pkg/dto"
	accountrepo "github.com/amirasaad/accounts/pkg/repository/account"
)

// Service provides create, read, update, delete and list operations for
// accounts on top of an injected repository.
type Service struct {
	repo   accountrepo.Repository
	logger *slog.Logger
}

// New creates a new Service with a repository and logger.
func New(repo accountrepo.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the input through the domain aggregate and stores a new
// account. Validation failures surface as *domain.FieldError.
func (s *Service) Create(
	ctx context.Context,
	create dto.AccountCreate,
) (*dto.AccountRead, error) {
	a, err := accountdomain.New(
		create.Name,
		create.Email,
		create.Address,
		create.PhoneNumber,
		create.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	read, err := s.repo.Create(ctx, dto.AccountCreate{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined,
	})
	if err != nil {
		s.logger.Error("failed to create account", "error", err)
		return nil, err
	}
	s.logger.Info("account created", "id", read.ID)
	return read, nil
}

// Get retrieves an account by id. Returns domain.ErrAccountNotFound for
// unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the stored record wholesale. The record must exist and the
// payload must pass the same validation as Create.
func (s *Service) Update(
	ctx context.Context,
	id int64,
	update dto.AccountUpdate,
) (*dto.AccountRead, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	a, err := accountdomain.New(
		update.Name,
		update.Email,
		update.Address,
		update.PhoneNumber,
		update.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	read, err := s.repo.Update(ctx, id, dto.AccountUpdate{
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined,
	})
	if err != nil {
		s.logger.Error("failed to update account", "id", id, "error", err)
		return nil, err
	}
	s.logger.Info("account updated", "id", id)
	return read, nil
}

// Delete removes an account by id. Deleting an unknown id is a no-op, so the
// operation is idempotent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete account", "id", id, "error", err)
		return err
	}
	s.logger.Info("account deleted", "id", id)
	return nil
}

// List returns every stored account in storage order.
func (s *Service) List(ctx context.Context) ([]*dto.AccountRead, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err)
		return nil, err
	}
	s.logger.Info("accounts listed", "count", len(accounts))
	return accounts, nil
}
