// Package testutils provides test doubles and HTTP helpers shared by the
// web and service test suites.
package testutils

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FakeAccountRepository is an in-memory implementation of the account
// repository contract. Ids are assigned monotonically and never reused,
// matching the bigserial behavior of the real store.
type FakeAccountRepository struct {
	mu      sync.Mutex
	nextID  int64
	order   []int64
	records map[int64]dto.AccountRead

	// Err, when set, is returned by every operation.
	Err error
}

// NewFakeAccountRepository creates an empty fake repository.
func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{
		records: make(map[int64]dto.AccountRead),
	}
}

// Create implements account.Repository.
func (f *FakeAccountRepository) Create(
	_ context.Context,
	create dto.AccountCreate,
) (*dto.AccountRead, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	read := dto.AccountRead{
		ID:          f.nextID,
		Name:        create.Name,
		Email:       create.Email,
		Address:     create.Address,
		PhoneNumber: create.PhoneNumber,
		DateJoined:  create.DateJoined,
	}
	f.records[read.ID] = read
	f.order = append(f.order, read.ID)
	return &read, nil
}

// Get implements account.Repository.
func (f *FakeAccountRepository) Get(_ context.Context, id int64) (*dto.AccountRead, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	read, ok := f.records[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &read, nil
}

// Update implements account.Repository.
func (f *FakeAccountRepository) Update(
	_ context.Context,
	id int64,
	update dto.AccountUpdate,
) (*dto.AccountRead, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	read := dto.AccountRead{
		ID:          id,
		Name:        update.Name,
		Email:       update.Email,
		Address:     update.Address,
		PhoneNumber: update.PhoneNumber,
		DateJoined:  update.DateJoined,
	}
	f.records[id] = read
	return &read, nil
}

// Delete implements account.Repository. Unknown ids are a no-op.
func (f *FakeAccountRepository) Delete(_ context.Context, id int64) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; ok {
		delete(f.records, id)
		for i, oid := range f.order {
			if oid == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

// List implements account.Repository, returning records in insertion order.
func (f *FakeAccountRepository) List(_ context.Context) ([]*dto.AccountRead, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*dto.AccountRead, 0, len(f.order))
	for _, id := range f.order {
		read := f.records[id]
		result = append(result, &read)
	}
	return result, nil
}

// RandomAccountBody builds a valid create/update JSON body with a unique
// email so tests never collide on fixture data.
func RandomAccountBody() string {
	randomID := uuid.New().String()[:8]
	return fmt.Sprintf(
		`{"name":"Test User %s","email":"test_%s@example.com","address":"1 Main St","phone_number":"555-0100","date_joined":"2020-01-15"}`,
		randomID, randomID,
	)
}

// MakeRequest is a helper for making HTTP requests against a Fiber app in
// tests.
func MakeRequest(app *fiber.App, method, path, body, contentType string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}
