package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
	"github.com/sangkips/electrostore-api/internal/domain/report"
	"github.com/sangkips/electrostore-api/internal/domain/repository"
	"github.com/sangkips/electrostore-api/internal/domain/session"
	"github.com/sangkips/electrostore-api/pkg/apperror"
	"github.com/sangkips/electrostore-api/pkg/pagination"
	"go.uber.org/zap"
)

// SalesReportService keeps a history of generated reports per admin
type SalesReportService struct {
	reportService *ReportService
	reportRepo    repository.SalesReportRepository
	logger        *zap.Logger
	now           func() time.Time
}

// NewSalesReportService creates a new sales report service
func NewSalesReportService(reportService *ReportService, reportRepo repository.SalesReportRepository, logger *zap.Logger) *SalesReportService {
	return &SalesReportService{
		reportService: reportService,
		reportRepo:    reportRepo,
		logger:        logger.Named("sales_report"),
		now:           time.Now,
	}
}

// GenerateSalesReportInput represents the input for saving a report run
type GenerateSalesReportInput struct {
	Title  string
	Filter report.Filter
}

// GenerateSalesReportOutput is the saved record and the report it holds
type GenerateSalesReportOutput struct {
	Record *entity.SalesReport
	Report report.Result
}

// GenerateReport runs the analytics report and records its headline totals
func (s *SalesReportService) GenerateReport(ctx context.Context, sess session.Session, input *GenerateSalesReportInput) (*GenerateSalesReportOutput, error) {
	out, err := s.reportService.GenerateReport(ctx, input.Filter)
	if err != nil {
		return nil, err
	}

	category := report.FilterAll
	if out.Criteria.Bucket != nil {
		category = string(*out.Criteria.Bucket)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Sales report " + out.Criteria.Range.StartDate() + " to " + out.Criteria.Range.EndDate()
	}

	record := &entity.SalesReport{
		AdminID:      sess.SubjectID,
		Title:        title,
		StartDate:    out.Criteria.Range.Start,
		EndDate:      out.Criteria.Range.End,
		Category:     category,
		TotalRevenue: out.Aggregates.TotalRevenue,
		TotalOrders:  out.Aggregates.TotalOrders,
		GeneratedAt:  s.now().UTC(),
	}
	if err := s.reportRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to save sales report", zap.Error(err))
		return nil, err
	}

	return &GenerateSalesReportOutput{Record: record, Report: out.Result}, nil
}

// ListReports returns the admin's saved reports, newest first
func (s *SalesReportService) ListReports(ctx context.Context, sess session.Session, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SalesReport], error) {
	params = validPage(params)
	reports, total, err := s.reportRepo.ListByAdmin(ctx, sess.SubjectID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(reports, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetReport returns a saved report owned by the admin
func (s *SalesReportService) GetReport(ctx context.Context, sess session.Session, id uuid.UUID) (*entity.SalesReport, error) {
	record, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Other admins' reports look missing rather than forbidden
	if record == nil || record.AdminID != sess.SubjectID {
		return nil, apperror.NewNotFoundError("Report")
	}
	return record, nil
}

// UpdateSalesReportInput represents the editable metadata of a report
type UpdateSalesReportInput struct {
	Title     *string
	StartDate *string
	EndDate   *string
}

// UpdateReport edits a saved report's title or date range. A new range
// recomputes the headline totals.
func (s *SalesReportService) UpdateReport(ctx context.Context, sess session.Session, id uuid.UUID, input *UpdateSalesReportInput) (*entity.SalesReport, error) {
	record, err := s.GetReport(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperror.NewFieldError("title", "title must not be empty")
		}
		record.Title = title
	}
	if input.StartDate != nil {
		start, err := time.Parse(report.DateLayout, *input.StartDate)
		if err != nil {
			return nil, apperror.NewFieldError("start_date", "start_date must be YYYY-MM-DD")
		}
		record.StartDate = start
	}
	if input.EndDate != nil {
		end, err := time.Parse(report.DateLayout, *input.EndDate)
		if err != nil {
			return nil, apperror.NewFieldError("end_date", "end_date must be YYYY-MM-DD")
		}
		record.EndDate = end
	}
	if record.EndDate.Before(record.StartDate) {
		return nil, apperror.NewFieldError("end_date", "end_date must not be before start_date")
	}

	// Totals always describe the stored range
	if input.StartDate != nil || input.EndDate != nil {
		criteria := report.Criteria{Range: report.NewDateRange(record.StartDate, record.EndDate)}
		if bucket, ok := report.ParseBucket(record.Category); ok {
			criteria.Bucket = &bucket
		}
		agg, err := s.reportService.Summarize(ctx, criteria)
		if err != nil {
			return nil, err
		}
		record.TotalRevenue = agg.TotalRevenue
		record.TotalOrders = agg.TotalOrders
		record.GeneratedAt = s.now().UTC()
	}

	if err := s.reportRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
