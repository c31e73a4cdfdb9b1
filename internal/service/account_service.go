package service

import (
	"context"

	"github.com/chenhelen9/devops-capstone-project/internal/models"
)

// AccountStore defines the persistence operations AccountService relies on.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	Find(ctx context.Context, id int64) (*models.Account, error)
	All(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
}

// AccountService mediates between the HTTP layer and the account store.
type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

// Create persists a new account. When no join date is supplied the record
// defaults to today, matching the store's column default.
func (s *AccountService) Create(ctx context.Context, account *models.Account) error {
	if account.DateJoined.IsZero() {
		account.DateJoined = models.Today()
	}
	return s.store.Create(ctx, account)
}

func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	return s.store.Find(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	return s.store.All(ctx)
}

func (s *AccountService) Update(ctx context.Context, account *models.Account) error {
	return s.store.Update(ctx, account)
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
