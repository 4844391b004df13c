// Package account implements the account repository on top of GORM.
package account

import (
	"context"

	infrarepo "github.com/amirasaad/accounts/infra/repository"
	"github.com/amirasaad/accounts/pkg/dto"
	repo "github.com/amirasaad/accounts/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.AccountCreate,
) (*dto.AccountRead, error) {
	acct := mapCreateDTOToModel(create)
	if err := r.db.WithContext(ctx).Create(&acct).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// Update implements account.Repository. Every column is written: the HTTP
// surface only supports full-record replace.
func (r *repository) Update(
	ctx context.Context,
	id int64,
	update dto.AccountUpdate,
) (*dto.AccountRead, error) {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Updates(mapUpdateDTOToModel(update))
	if res.Error != nil {
		return nil, infrarepo.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, infrarepo.MapGormErrorToDomain(gorm.ErrRecordNotFound)
	}
	return r.Get(ctx, id)
}

// Delete implements account.Repository. Deleting an absent id is not an
// error.
func (r *repository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&Account{}, id).Error
	return infrarepo.MapGormErrorToDomain(err)
}

// List implements account.Repository. Records come back in storage order;
// no ordering is guaranteed to callers.
func (r *repository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).Find(&accts).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// mapCreateDTOToModel maps AccountCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.AccountCreate) Account {
	return Account{
		Name:        create.Name,
		Email:       create.Email,
		Address:     create.Address,
		PhoneNumber: create.PhoneNumber,
		DateJoined:  create.DateJoined,
	}
}

// mapUpdateDTOToModel maps AccountUpdate DTO to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	return map[string]any{
		"name":         update.Name,
		"email":        update.Email,
		"address":      update.Address,
		"phone_number": update.PhoneNumber,
		"date_joined":  update.DateJoined,
	}
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:          acct.ID,
		Name:        acct.Name,
		Email:       acct.Email,
		Address:     acct.Address,
		PhoneNumber: acct.PhoneNumber,
		DateJoined:  acct.DateJoined,
	}
}
