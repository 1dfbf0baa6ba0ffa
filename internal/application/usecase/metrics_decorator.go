package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	"github.com/verdantpay/onboarding/internal/metrics"
)

// applicationUseCaseWithMetrics decorates ApplicationUseCase with metrics
// instrumentation.
type applicationUseCaseWithMetrics struct {
	next    ApplicationUseCase
	metrics metrics.BusinessMetrics
}

// NewApplicationUseCaseWithMetrics wraps an ApplicationUseCase with metrics
// recording.
func NewApplicationUseCaseWithMetrics(useCase ApplicationUseCase, m metrics.BusinessMetrics) ApplicationUseCase {
	return &applicationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *applicationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "applications", operation, status)
	a.metrics.RecordDuration(ctx, "applications", operation, time.Since(start), status)
}

// Submit records metrics for application submission.
func (a *applicationUseCaseWithMetrics) Submit(
	ctx context.Context,
	input SubmitApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	application, err := a.next.Submit(ctx, input)
	a.record(ctx, "application_submit", start, err)
	return application, err
}

// Update records metrics for application updates.
func (a *applicationUseCaseWithMetrics) Update(
	ctx context.Context,
	applicationID uuid.UUID,
	input UpdateApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	application, err := a.next.Update(ctx, applicationID, input)
	a.record(ctx, "application_update", start, err)
	return application, err
}

// Get records metrics for masked application retrieval.
func (a *applicationUseCaseWithMetrics) Get(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	application, err := a.next.Get(ctx, applicationID)
	a.record(ctx, "application_get", start, err)
	return application, err
}

// GetWithSensitiveData records metrics for plaintext application retrieval.
// Tracked separately from Get so decryption traffic shows up on its own.
func (a *applicationUseCaseWithMetrics) GetWithSensitiveData(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	application, err := a.next.GetWithSensitiveData(ctx, applicationID)
	a.record(ctx, "application_get_sensitive", start, err)
	return application, err
}

// List records metrics for application listing.
func (a *applicationUseCaseWithMetrics) List(
	ctx context.Context,
	tenantID uuid.UUID,
	offset, limit int,
) ([]*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	applications, err := a.next.List(ctx, tenantID, offset, limit)
	a.record(ctx, "application_list", start, err)
	return applications, err
}

// UpdateStatus records metrics for review workflow moves.
func (a *applicationUseCaseWithMetrics) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) (*applicationDomain.MerchantApplication, error) {
	start := time.Now()
	application, err := a.next.UpdateStatus(ctx, applicationID, status)
	a.record(ctx, "application_update_status", start, err)
	return application, err
}
