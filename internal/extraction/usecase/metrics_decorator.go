package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	"github.com/verdantpay/onboarding/internal/metrics"
)

// extractionUseCaseWithMetrics decorates ExtractionUseCase with metrics
// instrumentation.
type extractionUseCaseWithMetrics struct {
	next    ExtractionUseCase
	metrics metrics.BusinessMetrics
}

// NewExtractionUseCaseWithMetrics wraps an ExtractionUseCase with metrics
// recording.
func NewExtractionUseCaseWithMetrics(useCase ExtractionUseCase, m metrics.BusinessMetrics) ExtractionUseCase {
	return &extractionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *extractionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "extractions", operation, status)
	e.metrics.RecordDuration(ctx, "extractions", operation, time.Since(start), status)
}

// Protect records metrics for extraction protection.
func (e *extractionUseCaseWithMetrics) Protect(
	ctx context.Context,
	input ProtectExtractionInput,
) (*extractionDomain.DocumentExtraction, error) {
	start := time.Now()
	extraction, err := e.next.Protect(ctx, input)
	e.record(ctx, "extraction_protect", start, err)
	return extraction, err
}

// Get records metrics for masked extraction retrieval.
func (e *extractionUseCaseWithMetrics) Get(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	start := time.Now()
	extraction, err := e.next.Get(ctx, extractionID)
	e.record(ctx, "extraction_get", start, err)
	return extraction, err
}

// GetWithSensitiveData records metrics for plaintext extraction retrieval.
func (e *extractionUseCaseWithMetrics) GetWithSensitiveData(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	start := time.Now()
	extraction, err := e.next.GetWithSensitiveData(ctx, extractionID)
	e.record(ctx, "extraction_get_sensitive", start, err)
	return extraction, err
}

// ListByApplication records metrics for extraction listing.
func (e *extractionUseCaseWithMetrics) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	start := time.Now()
	extractions, err := e.next.ListByApplication(ctx, applicationID)
	e.record(ctx, "extraction_list", start, err)
	return extractions, err
}
