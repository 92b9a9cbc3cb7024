package domain

import "fmt"

// ErrorCode classifies a per-image processing failure. Failures are
// row-local: they are recorded in the slot and never fail the request.
type ErrorCode string

const (
	ErrCodeNetwork ErrorCode = "network_error"
	ErrCodeDecode  ErrorCode = "decode_error"
	ErrCodeWrite   ErrorCode = "write_error"
)

// ImageResult is one image's processing outcome within a product's ordered
// output list. The zero value means the slot has not resolved yet.
type ImageResult struct {
	OutputURL string    `json:"output_url,omitempty"`
	Code      ErrorCode `json:"code,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (r ImageResult) Resolved() bool {
	return r.OutputURL != "" || r.Code != ""
}

func (r ImageResult) Failed() bool {
	return r.Code != ""
}

// Product is one row of an uploaded CSV: the product's identifying strings,
// its source image URLs and one output slot per URL.
type Product struct {
	ID             int64         `db:"id"               json:"-"`
	RequestID      string        `db:"request_id"       json:"-"`
	SerialNumber   string        `db:"serial_number"    json:"serial_number"`
	ProductName    string        `db:"product_name"     json:"product_name"`
	InputImageURLs []string      `db:"input_image_urls" json:"input_image_urls"`
	Outputs        []ImageResult `db:"outputs"          json:"outputs"`
}

func (p *Product) Validate() error {
	if p.SerialNumber == "" {
		return fmt.Errorf("serial number is required")
	}

	if p.ProductName == "" {
		return fmt.Errorf("product name is required")
	}

	return nil
}

// InitOutputs allocates the slot arena, one slot per input URL. Slots are
// written in place by index, so the arena never resizes during processing.
func (p *Product) InitOutputs() {
	if len(p.Outputs) != len(p.InputImageURLs) {
		p.Outputs = make([]ImageResult, len(p.InputImageURLs))
	}
}

// Resolved reports whether every slot has an outcome.
func (p *Product) Resolved() bool {
	if len(p.Outputs) != len(p.InputImageURLs) {
		return false
	}

	for _, out := range p.Outputs {
		if !out.Resolved() {
			return false
		}
	}

	return true
}

// Status derives the row state from the slots: pending until every slot
// resolves, then success, or partial_failure if any slot failed.
func (p *Product) Status() RowStatus {
	if !p.Resolved() {
		return RowStatusPending
	}

	for _, out := range p.Outputs {
		if out.Failed() {
			return RowStatusPartialFailure
		}
	}

	return RowStatusSuccess
}

// OutputURLs returns the successfully processed image locations in slot order.
func (p *Product) OutputURLs() []string {
	urls := make([]string, 0, len(p.Outputs))
	for _, out := range p.Outputs {
		if out.OutputURL != "" {
			urls = append(urls, out.OutputURL)
		}
	}

	return urls
}
