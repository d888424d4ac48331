package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"go.uber.org/zap"
)

const defaultImportTimeout = 30 * time.Second

type ImportProductsFromCSVInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ImportProductsFromCSV interface {
	Execute(ctx context.Context, actor account.Principal, in ImportProductsFromCSVInput) (domain.ImportSummary, error)
}

type ImportProductsConfig struct {
	// Timeout bounds parsing, validation and the bulk write together.
	Timeout time.Duration
	Now     func() time.Time
}

type importProductsFromCSV struct {
	writer      domain.ProductBulkWriter
	revalidator domain.Revalidator
	logger      *zap.Logger
	cfg         ImportProductsConfig
}

func NewImportProductsFromCSV(writer domain.ProductBulkWriter, revalidator domain.Revalidator, logger *zap.Logger, cfg ImportProductsConfig) ImportProductsFromCSV {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultImportTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &importProductsFromCSV{
		writer:      writer,
		revalidator: revalidator,
		logger:      logger,
		cfg:         cfg,
	}
}

// Execute returns a summary for every upload that parsed. A non-nil error
// with a populated summary means the batch write failed after validation.
func (uc *importProductsFromCSV) Execute(ctx context.Context, actor account.Principal, in ImportProductsFromCSVInput) (domain.ImportSummary, error) {
	if err := actor.RequireAdmin(); err != nil {
		return domain.ImportSummary{}, err
	}
	if len(in.Data) == 0 {
		return domain.ImportSummary{}, ErrFileRequired
	}
	if !isCSVUpload(in.Filename, in.ContentType) {
		return domain.ImportSummary{}, ErrInvalidFileType
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	rows, err := parseImportRows(in.Data)
	if err != nil {
		return domain.ImportSummary{}, err
	}

	validator := newRowValidator(uc.cfg.Now)
	drafts := make([]domain.ProductDraft, 0, len(rows))
	rowErrors := make([]domain.RowError, 0)
	for _, row := range rows {
		draft, err := validator.Validate(row)
		if err != nil {
			var rowErr *domain.RowError
			if !errors.As(err, &rowErr) {
				return domain.ImportSummary{}, err
			}
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		summary := noValidRowsSummary(rowErrors)
		uc.logger.Info("product import skipped, no valid rows",
			zap.String("user_id", actor.UserID),
			zap.Int("rows", len(rows)),
			zap.Int("errors", len(rowErrors)),
		)
		return summary, nil
	}

	stored, err := uc.writer.InsertProducts(ctx, drafts)
	if err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrImportTimeout, err)
		}
		uc.logger.Error("product import batch failed",
			zap.String("user_id", actor.UserID),
			zap.Int("rows", len(rows)),
			zap.Int("valid", len(drafts)),
			zap.Error(err),
		)
		return failedSummary(len(rows), rowErrors, err), fmt.Errorf("%w: %w", ErrBatchWrite, err)
	}

	summary := writtenSummary(len(rows), int(stored), rowErrors)
	uc.logger.Info("product import finished",
		zap.String("user_id", actor.UserID),
		zap.String("outcome", string(summary.Outcome)),
		zap.Int("rows", summary.TotalProcessed),
		zap.Int("stored", summary.SuccessCount),
		zap.Int("errors", summary.ErrorCount),
	)

	revalidate(ctx, uc.logger, uc.revalidator, importedPaths(drafts)...)

	return summary, nil
}

func isCSVUpload(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(strings.TrimSpace(filename)), ".csv") {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/csv" || mediaType == "application/csv"
}

func noValidRowsSummary(rowErrors []domain.RowError) domain.ImportSummary {
	message := "no valid rows to import"
	if len(rowErrors) == 0 {
		message = "the file has no data rows"
	}
	return domain.ImportSummary{
		Outcome:        domain.OutcomeNoValidRows,
		Message:        message,
		TotalProcessed: 0,
		SuccessCount:   0,
		ErrorCount:     len(rowErrors),
		Errors:         rowErrors,
	}
}

func failedSummary(total int, rowErrors []domain.RowError, err error) domain.ImportSummary {
	return domain.ImportSummary{
		Outcome:        domain.OutcomeFailed,
		Message:        fmt.Sprintf("import failed, no products were stored: %v", err),
		TotalProcessed: total,
		SuccessCount:   0,
		ErrorCount:     len(rowErrors),
		Errors:         rowErrors,
	}
}

func writtenSummary(total, stored int, rowErrors []domain.RowError) domain.ImportSummary {
	summary := domain.ImportSummary{
		Outcome:        domain.OutcomeSuccess,
		Message:        fmt.Sprintf("imported %d products", stored),
		TotalProcessed: total,
		SuccessCount:   stored,
		ErrorCount:     len(rowErrors),
		Errors:         rowErrors,
	}
	if len(rowErrors) > 0 {
		summary.Outcome = domain.OutcomePartialSuccess
		summary.Message = fmt.Sprintf("imported %d of %d products, %d rows had errors", stored, total, len(rowErrors))
	}
	return summary
}

func importedPaths(drafts []domain.ProductDraft) []string {
	paths := []string{domain.AdminProductsPath, domain.CreationsPath}
	seen := make(map[string]struct{})
	for _, d := range drafts {
		if d.ProductType == nil {
			continue
		}
		p := domain.ProductTypePath(d.ProductType)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	return paths
}
