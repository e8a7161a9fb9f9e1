package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// TransferRequestRepository is the in-process result sink for submitted transfers
type TransferRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]domain.TransferRequest
}

// NewTransferRequestRepository creates an empty result sink
func NewTransferRequestRepository() *TransferRequestRepository {
	return &TransferRequestRepository{
		requests: make(map[string]domain.TransferRequest),
	}
}

// Save records a finalized request. Identifiers must be unique.
func (r *TransferRequestRepository) Save(ctx context.Context, req *domain.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[req.ID]; exists {
		return fmt.Errorf("transfer request %s already exists", req.ID)
	}
	r.requests[req.ID] = *req
	return nil
}

// GetByID retrieves a request by its ID
func (r *TransferRequestRepository) GetByID(ctx context.Context, id string) (*domain.TransferRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, id)
	}
	return &req, nil
}
