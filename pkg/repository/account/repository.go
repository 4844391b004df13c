// Package account declares the persistence capability set for Account
// records. Implementations live under infra/repository.
package account

import (
	"context"

	"github.com/amirasaad/accounts/pkg/dto"
)

// Repository is the storage-facing contract for Account records.
// Get and Update return domain.ErrAccountNotFound for unknown ids;
// Delete treats an unknown id as a no-op.
type Repository interface {
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)
	Get(ctx context.Context, id int64) (*dto.AccountRead, error)
	Update(ctx context.Context, id int64, update dto.AccountUpdate) (*dto.AccountRead, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*dto.AccountRead, error)
}
