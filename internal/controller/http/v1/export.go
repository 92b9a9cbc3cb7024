package v1

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/image_processor/internal/domain"
)

// Output CSV columns match the uploaded format plus the processed locations.
type outputRecord struct {
	SerialNumber    string `csv:"S. No"`
	ProductName     string `csv:"Product Name"`
	InputImageURLs  string `csv:"Input Image Urls"`
	OutputImageURLs string `csv:"Output Image Urls"`
}

func writeOutputCSVFile(path string, products []*domain.Product) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	writer := csv.NewWriter(f)
	enc := csvutil.NewEncoder(writer)

	for _, product := range products {
		rec := outputRecord{
			SerialNumber:    product.SerialNumber,
			ProductName:     product.ProductName,
			InputImageURLs:  strings.Join(product.InputImageURLs, ","),
			OutputImageURLs: strings.Join(product.OutputURLs(), ","),
		}

		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
