package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"billkit/internal/domain"
)

const documentsSheet = "Documents"

// WriteXLSX builds a workbook with one summary row per document plus an item
// detail sheet, and returns it ready to be streamed.
func WriteXLSX(docs []domain.Document) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), documentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeDocumentsSheet(f, docs); err != nil {
		return nil, err
	}
	if err := writeItemsSheet(f, docs); err != nil {
		return nil, err
	}
	return f, nil
}

func writeDocumentsSheet(f *excelize.File, docs []domain.Document) error {
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(documentsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range docs {
		strs := documentToRow(&docs[i])
		row := make([]interface{}, len(strs))
		for j, s := range strs {
			row[j] = s
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(documentsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeItemsSheet(f *excelize.File, docs []domain.Document) error {
	const sheet = "Line Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}

	header := []interface{}{
		"Document Number", "Description", "HSN/SAC", "Quantity", "Rate",
		"GST Rate", "Amount", "GST Amount", "CGST", "SGST", "IGST",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write items header: %w", err)
	}

	rowIdx := 2
	for i := range docs {
		doc := &docs[i]
		for j := range doc.Items {
			item := &doc.Items[j]
			row := []interface{}{
				doc.Number, item.Description, item.HSNSAC, item.Quantity, item.Rate,
				int(item.GSTRate), item.Amount, item.GSTAmount, item.CGST, item.SGST, item.IGST,
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("write items row %d: %w", rowIdx, err)
			}
			rowIdx++
		}
	}
	return nil
}
