package service

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/electrostore-api/internal/config"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"go.uber.org/zap"
)

// ReportService produces the sales analytics report
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
	cfg           config.ReportConfig
	logger        *zap.Logger
	now           func() time.Time
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository, cfg config.ReportConfig, logger *zap.Logger) *ReportService {
	return &ReportService{
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
		logger:        logger.Named("report"),
		now:           time.Now,
	}
}

// ReportOutput is a generated report with the criteria it was run for
type ReportOutput struct {
	Criteria   report.Criteria
	Aggregates report.Aggregates
	Result     report.Result
}

// GenerateReport validates the filter, reads the aggregates from one
// snapshot and assembles the dashboard payload
func (s *ReportService) GenerateReport(ctx context.Context, filter report.Filter) (*ReportOutput, error) {
	criteria, err := report.Resolve(filter, s.cfg.Year(s.now()))
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	agg, err := s.Summarize(ctx, criteria)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("report generated",
		zap.String("start", criteria.Range.StartDate()),
		zap.String("end", criteria.Range.EndDate()),
		zap.Int64("orders", agg.TotalOrders),
	)

	return &ReportOutput{
		Criteria:   criteria,
		Aggregates: *agg,
		Result:     report.Assemble(*agg, s.cfg.ConversionRate),
	}, nil
}

// Summarize reads the aggregates of an already resolved range
func (s *ReportService) Summarize(ctx context.Context, criteria report.Criteria) (*report.Aggregates, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	agg, err := s.aggregate(ctx, criteria)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return agg, nil
}

// DailySales returns revenue per calendar day, zero-filled
func (s *ReportService) DailySales(ctx context.Context, filter report.DailyFilter) ([]report.DailyPoint, error) {
	r, err := report.ResolveDaily(filter)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	days, err := s.analyticsRepo.DailySales(ctx, r)
	if report.KindOf(err) == report.KindConnectionFailure && s.backoff(ctx) {
		days, err = s.analyticsRepo.DailySales(ctx, r)
	}
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return report.AssembleDaily(days), nil
}

// aggregate retries once when the store could not be reached. Query
// failures are not retried.
func (s *ReportService) aggregate(ctx context.Context, criteria report.Criteria) (*report.Aggregates, error) {
	agg, err := s.analyticsRepo.Aggregate(ctx, criteria)
	if report.KindOf(err) == report.KindConnectionFailure && s.backoff(ctx) {
		s.logger.Warn("retrying report after connection failure", zap.Error(err))
		agg, err = s.analyticsRepo.Aggregate(ctx, criteria)
	}
	return agg, err
}

// backoff waits before a retry; false means the deadline left no room
func (s *ReportService) backoff(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(s.cfg.RetryBackoff)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *ReportService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

// mapError turns a report failure into the HTTP facing error
func (s *ReportService) mapError(ctx context.Context, err error) error {
	var rerr *report.Error
	if errors.As(err, &rerr) && rerr.Kind == report.KindInvalidFilter {
		return apperror.NewFieldError(rerr.Field, rerr.Message)
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error("report timed out", zap.Duration("timeout", s.cfg.Timeout), zap.Error(err))
		return apperror.ErrTimeout
	}

	switch report.KindOf(err) {
	case report.KindConnectionFailure:
		s.logger.Error("report data store unavailable", zap.Error(err))
		return apperror.ErrUnavailable
	default:
		s.logger.Error("report query failed", zap.Error(err))
		return apperror.NewAppError(apperror.ErrInternalServer.Code, "Failed to generate report")
	}
}
