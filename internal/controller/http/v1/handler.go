package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/image_processor/internal/domain"
	"github.com/kurochkinivan/image_processor/internal/ingest"
)

type Handler struct {
	requests   RequestCreator
	products   ProductsCreator
	transactor Transactor
	dispatcher Dispatcher
	status     StatusProvider
	reports    ReportGenerator
	outputDir  string
}

type RequestCreator interface {
	CreateRequest(ctx context.Context, req *domain.ProcessingRequest) error
}

type ProductsCreator interface {
	CreateProducts(ctx context.Context, products ...*domain.Product) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Dispatcher interface {
	Enqueue(requestID string)
}

type StatusProvider interface {
	RequestStatus(ctx context.Context, requestID string) (*domain.RequestStatus, error)
}

type ReportGenerator interface {
	GenerateReport(status *domain.RequestStatus) ([]byte, error)
}

func NewHandler(
	requests RequestCreator,
	products ProductsCreator,
	transactor Transactor,
	dispatcher Dispatcher,
	status StatusProvider,
	reports ReportGenerator,
	outputDir string,
) *Handler {
	return &Handler{
		requests:   requests,
		products:   products,
		transactor: transactor,
		dispatcher: dispatcher,
		status:     status,
		reports:    reports,
		outputDir:  outputDir,
	}
}

type UploadCSVResponse struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "csv file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	products, err := ingest.ParseProducts(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := &domain.ProcessingRequest{
		RequestID:   uuid.NewString(),
		Status:      domain.StatusPending,
		CallbackURL: r.FormValue("webhook_url"),
	}

	for _, product := range products {
		product.RequestID = req.RequestID
	}

	err = h.transactor.WithTransaction(r.Context(), func(ctx context.Context) error {
		if err := h.requests.CreateRequest(ctx, req); err != nil {
			return err
		}

		return h.products.CreateProducts(ctx, products...)
	})
	if err != nil {
		http.Error(w, "failed to save request", http.StatusInternalServerError)
		return
	}

	h.dispatcher.Enqueue(req.RequestID)

	writeJSON(w, http.StatusAccepted, UploadCSVResponse{
		RequestID: req.RequestID,
		Message:   "CSV file uploaded and processing started.",
	})
}

type ProductStatusResponse struct {
	SerialNumber   string               `json:"serial_number"`
	ProductName    string               `json:"product_name"`
	InputImageURLs []string             `json:"input_image_urls"`
	OutputImages   []domain.ImageResult `json:"output_images"`
	Status         domain.RowStatus     `json:"status"`
}

type GetStatusResponse struct {
	RequestID     string                  `json:"request_id"`
	Status        domain.Status           `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	CompletedAt   *time.Time              `json:"completed_at"`
	CallbackURL   string                  `json:"callback_url,omitempty"`
	Products      []ProductStatusResponse `json:"products"`
	OutputCSVLink string                  `json:"output_csv_link,omitempty"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "request_id")

	status, err := h.status.RequestStatus(r.Context(), requestID)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	resp := GetStatusResponse{
		RequestID:   status.Request.RequestID,
		Status:      status.Request.Status,
		CreatedAt:   status.Request.CreatedAt,
		CompletedAt: status.Request.CompletedAt,
		CallbackURL: status.Request.CallbackURL,
		Products:    make([]ProductStatusResponse, 0, len(status.Products)),
	}

	for _, product := range status.Products {
		resp.Products = append(resp.Products, ProductStatusResponse{
			SerialNumber:   product.SerialNumber,
			ProductName:    product.ProductName,
			InputImageURLs: product.InputImageURLs,
			OutputImages:   product.Outputs,
			Status:         product.Status(),
		})
	}

	if status.Request.Status == domain.StatusCompleted {
		resp.OutputCSVLink = "/api/v1/download/" + status.Request.RequestID
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DownloadOutputCSV(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "request_id")

	status, err := h.status.RequestStatus(r.Context(), requestID)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	if status.Request.Status != domain.StatusCompleted {
		http.Error(w, "request is not completed yet", http.StatusConflict)
		return
	}

	outputFile := filepath.Join(h.outputDir, requestID+"_output.csv")
	if _, err := os.Stat(outputFile); errors.Is(err, os.ErrNotExist) {
		if err := writeOutputCSVFile(outputFile, status.Products); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+requestID+`_output.csv"`)
	http.ServeFile(w, r, outputFile)
}

func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "request_id")

	status, err := h.status.RequestStatus(r.Context(), requestID)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	report, err := h.reports.GenerateReport(status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+requestID+`_report.pdf"`)
	w.Write(report)
}

func (h *Handler) writeStatusError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrRequestNotFound) {
		http.Error(w, "request not found", http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}
