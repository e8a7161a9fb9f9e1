// Package memory holds process-local repositories used when no database is configured
// and by tests.
package memory

import (
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

var (
	_ domain.AccountRepository         = (*AccountRepository)(nil)
	_ domain.RateRepository            = (*RateRepository)(nil)
	_ domain.TransferRequestRepository = (*TransferRequestRepository)(nil)
)
