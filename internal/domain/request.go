package domain

import "time"

type ProcessingRequest struct {
	RequestID   string     `db:"request_id"   json:"request_id"`
	Status      Status     `db:"status"       json:"status"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	CallbackURL string     `db:"callback_url" json:"callback_url,omitempty"`
}

// RequestStatus is the read model combining a request with its products.
type RequestStatus struct {
	Request  *ProcessingRequest
	Products []*Product
}
