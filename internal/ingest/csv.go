package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/image_processor/internal/domain"
)

var (
	ErrEmptyFile     = errors.New("csv file is empty")
	ErrInvalidHeader = errors.New("invalid csv header, expected: S. No, Product Name, Input Image Urls")
)

// Header columns after normalization. The uploaded file may spell them
// "S. No, Product Name, Input Image Urls" or any punctuation/case variant.
var expectedHeader = []string{"sno", "productname", "inputimageurls"}

var nonAlphanumeric = regexp.MustCompile(`\W+`)

type record struct {
	SerialNumber   string `csv:"sno"`
	ProductName    string `csv:"productname"`
	InputImageURLs string `csv:"inputimageurls"`
}

// ParseProducts reads an uploaded CSV and yields one product per row.
// Each row must carry exactly three columns; image URLs are a comma-separated
// list within the third column.
func ParseProducts(r io.Reader) ([]*domain.Product, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if !slices.Equal(normalizeHeader(header), expectedHeader) {
		return nil, ErrInvalidHeader
	}

	dec, err := csvutil.NewDecoder(reader, expectedHeader...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var products []*domain.Product
	for {
		var rec record

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode row #%d: %w", len(products)+1, err)
		}

		product := &domain.Product{
			SerialNumber:   strings.TrimSpace(rec.SerialNumber),
			ProductName:    strings.TrimSpace(rec.ProductName),
			InputImageURLs: splitURLs(rec.InputImageURLs),
		}

		if err := product.Validate(); err != nil {
			return nil, fmt.Errorf("invalid row #%d: %w", len(products)+1, err)
		}

		products = append(products, product)
	}

	return products, nil
}

func normalizeHeader(header []string) []string {
	normalized := make([]string, len(header))
	for i, col := range header {
		normalized[i] = strings.ToLower(nonAlphanumeric.ReplaceAllString(col, ""))
	}

	return normalized
}

func splitURLs(raw string) []string {
	var urls []string
	for _, url := range strings.Split(raw, ",") {
		if url = strings.TrimSpace(url); url != "" {
			urls = append(urls, url)
		}
	}

	return urls
}
