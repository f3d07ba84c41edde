package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"billkit/internal/domain"
	"billkit/internal/export"
	"billkit/internal/port"
)

// exportBatchSize bounds how many documents are held in memory per fetch while
// streaming an export.
const exportBatchSize = 500

// ExportService renders saved documents as downloadable files.
type ExportService interface {
	// WriteCSV streams all documents (optionally one type) as CSV, BOM first.
	WriteCSV(ctx context.Context, w io.Writer, docType domain.DocumentType) error
	// BuildXLSX builds a workbook of all documents (optionally one type).
	BuildXLSX(ctx context.Context, docType domain.DocumentType) (*excelize.File, error)
}

type exportService struct {
	docRepo port.DocumentRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(docRepo port.DocumentRepository) ExportService {
	return &exportService{docRepo: docRepo}
}

func (s *exportService) WriteCSV(ctx context.Context, w io.Writer, docType domain.DocumentType) error {
	if _, err := w.Write(export.BOM); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	cw := export.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	err := s.eachBatch(ctx, docType, func(docs []domain.Document) error {
		return cw.WriteDocuments(docs)
	})
	if err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

func (s *exportService) BuildXLSX(ctx context.Context, docType domain.DocumentType) (*excelize.File, error) {
	var all []domain.Document
	err := s.eachBatch(ctx, docType, func(docs []domain.Document) error {
		all = append(all, docs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export.BuildXLSX: %w", err)
	}

	f, err := export.WriteXLSX(all)
	if err != nil {
		return nil, fmt.Errorf("export.BuildXLSX: %w", err)
	}
	return f, nil
}

func (s *exportService) eachBatch(ctx context.Context, docType domain.DocumentType, fn func([]domain.Document) error) error {
	for offset := 0; ; offset += exportBatchSize {
		var (
			docs []domain.Document
			err  error
		)
		if docType != "" {
			docs, _, err = s.docRepo.List(ctx, docType, offset, exportBatchSize)
		} else {
			docs, err = s.docRepo.ListAll(ctx, offset, exportBatchSize)
		}
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		if err := fn(docs); err != nil {
			return err
		}
		if len(docs) < exportBatchSize {
			return nil
		}
	}
}
