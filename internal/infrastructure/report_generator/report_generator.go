package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/image_processor/internal/domain"
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport renders a per-request PDF summary: request metadata plus one
// line per product with its row status and processed image count.
func (g *ReportGenerator) GenerateReport(status *domain.RequestStatus) ([]byte, error) {
	cfg := config.NewBuilder().Build()

	m := maroto.New(cfg)

	req := status.Request

	m.AddRow(12, text.NewCol(12, "Image Processing Report", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
	}))

	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Request: %s", req.RequestID), props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Status: %s", req.Status), props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Created at: %s", req.CreatedAt.Format("2006-01-02 15:04:05")), props.Text{Size: 10}))

	if req.CompletedAt != nil {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Completed at: %s", req.CompletedAt.Format("2006-01-02 15:04:05")), props.Text{Size: 10}))
	}

	m.AddRow(10,
		text.NewCol(2, "S. No", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(5, "Product Name", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, "Row Status", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Images", props.Text{Size: 10, Style: fontstyle.Bold}),
	)

	for _, product := range status.Products {
		m.AddRow(8,
			text.NewCol(2, product.SerialNumber, props.Text{Size: 9}),
			text.NewCol(5, product.ProductName, props.Text{Size: 9}),
			text.NewCol(3, string(product.Status()), props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d/%d", len(product.OutputURLs()), len(product.InputImageURLs)), props.Text{Size: 9}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}
