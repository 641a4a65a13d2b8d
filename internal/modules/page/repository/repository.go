package repository

import (
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
)

// Repository persists assembled pages between revalidations
type Repository interface {
	SavePage(page *domain.Page) error
	// SavePages stores several pages so that either all of them replace the previous snapshots or none do
	SavePages(pages ...*domain.Page) error
	GetPage(variant domain.Variant) (*domain.Page, error)
}
