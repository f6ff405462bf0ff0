package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmjubaer/white-black-server/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts products in bulk.
// Expected headers: title, category, fit, price, status, deals,
// description, image. Price is carried over verbatim, parseable or not.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and inserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p := parseRow(record, index)
		if p == nil {
			continue
		}
		if p.Title == "" || p.Category == "" {
			return imported, fmt.Errorf("invalid product row (missing title or category) at record %d", imported+1)
		}

		if _, err := i.productRepo.Insert(ctx, *p); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", p.Title, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *domain.Product {
	title := pick(record, index, "title")
	category := pick(record, index, "category")
	if title == "" && category == "" {
		return nil
	}

	deals := false
	if raw := pick(record, index, "deals"); raw != "" {
		deals, _ = strconv.ParseBool(raw)
	}

	return &domain.Product{
		Title:       title,
		Category:    category,
		Fit:         pick(record, index, "fit"),
		Price:       pick(record, index, "price"),
		Status:      pick(record, index, "status"),
		Deals:       deals,
		Description: pick(record, index, "description"),
		Image:       pick(record, index, "image"),
	}
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
