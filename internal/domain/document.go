package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is the outcome of one generation request.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Layout      string    `json:"layout"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Content     []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
)
