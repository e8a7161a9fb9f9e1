package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// AccountRepository keeps funding accounts in insertion order
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.FundingAccount
	index    map[uuid.UUID]int
}

// NewAccountRepository creates an empty account directory
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		index: make(map[uuid.UUID]int),
	}
}

// List returns a copy of every account in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]domain.FundingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FundingAccount, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FundingAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	acc := r.accounts[i]
	return &acc, nil
}

// Create appends an account to the directory
func (r *AccountRepository) Create(ctx context.Context, account *domain.FundingAccount) error {
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}
	r.index[account.ID] = len(r.accounts)
	r.accounts = append(r.accounts, *account)
	return nil
}
