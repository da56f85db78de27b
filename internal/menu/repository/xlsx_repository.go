package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

var xlsxHeader = []string{"name", "ingredients", "price", "img_url"}

// XLSXRepository reads the first sheet of a workbook laid out as
// name | ingredients | price | img_url, with a header row.
type XLSXRepository struct {
	path string
}

func NewXLSXRepository(path string) *XLSXRepository {
	return &XLSXRepository{path: path}
}

func (r *XLSXRepository) FindAll(ctx context.Context) (domain.Menu, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening menu workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return domain.Menu{}, nil
	}
	if err := checkXLSXHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	menu := make(domain.Menu, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		cell := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}

		if cell(0) == "" {
			return nil, fmt.Errorf("row %d: name is required", i+2)
		}
		price, err := decimal.NewFromString(cell(2))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing price %q: %w", i+2, cell(2), err)
		}
		menu = append(menu, domain.MenuItem{
			Name:        cell(0),
			Ingredients: cell(1),
			Price:       price,
			ImgURL:      cell(3),
		})
	}

	return menu, nil
}

// WriteXLSX writes menu in the layout XLSXRepository reads.
func WriteXLSX(w io.Writer, menu domain.Menu) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}

	header := make([]interface{}, len(xlsxHeader))
	for i, h := range xlsxHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range menu {
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{item.Name, item.Ingredients, item.Price.String(), item.ImgURL}
		if err := sw.SetRow(cellAddr, row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func checkXLSXHeader(row []string) error {
	for i, want := range xlsxHeader {
		got := ""
		if i < len(row) {
			got = strings.ToLower(strings.TrimSpace(row[i]))
		}
		if got != want {
			return fmt.Errorf("header column %d: want %q, got %q", i+1, want, got)
		}
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
