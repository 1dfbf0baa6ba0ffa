// Package mocks provides test doubles for database interfaces.
package mocks

import (
	"context"

	"github.com/verdantpay/onboarding/internal/database"
)

// PassthroughTxManager implements database.TxManager by running the
// transactional function directly, without a real transaction. Use cases
// under test see the same control flow as with a committed transaction.
type PassthroughTxManager struct{}

// WithTx runs fn with the caller's context.
func (PassthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ database.TxManager = (*PassthroughTxManager)(nil)
