package account

import (
	"time"

	"github.com/amirasaad/accounts/pkg/dto"
)

// AccountRequest is the JSON body accepted by create and full-update
// operations. Unknown fields are ignored; date_joined is optional and must
// be an ISO date when present.
type AccountRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  string `json:"date_joined" validate:"omitempty,datetime=2006-01-02"`
}

// AccountResponse is the serialized representation of an account. Every
// attribute is always present.
type AccountResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  string `json:"date_joined"`
}

// dateJoined parses the optional date_joined attribute. The format has
// already been checked by the validator, so the zero value only stands for
// "absent".
func (r *AccountRequest) dateJoined() time.Time {
	if r.DateJoined == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, r.DateJoined)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToCreateDTO maps the request body to a persistence create DTO.
func (r *AccountRequest) ToCreateDTO() dto.AccountCreate {
	return dto.AccountCreate{
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		DateJoined:  r.dateJoined(),
	}
}

// ToUpdateDTO maps the request body to a persistence update DTO.
func (r *AccountRequest) ToUpdateDTO() dto.AccountUpdate {
	return dto.AccountUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		DateJoined:  r.dateJoined(),
	}
}

// ToAccountResponse maps a read DTO to the API response shape, rendering
// date_joined as its ISO date string.
func ToAccountResponse(a *dto.AccountRead) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Address:     a.Address,
		PhoneNumber: a.PhoneNumber,
		DateJoined:  a.DateJoined.Format(time.DateOnly),
	}
}
