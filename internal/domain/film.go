package domain

import (
	"context"
	"time"

	"github.com/gosimple/slug"
)

type Film struct {
	ID        int
	Name      string
	Slug      string
	Runtime   int
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rename sets the film name and derives its URL slug from it.
func (f *Film) Rename(name string) {
	f.Name = name
	f.Slug = slug.Make(name)
}

type FilmFilters struct {
	Available *bool
	Pagination
}

type FilmRepository interface {
	Create(ctx context.Context, film *Film) error
	GetById(ctx context.Context, id int) (*Film, error)
	GetAll(ctx context.Context, filters FilmFilters) ([]Film, *Metadata, error)
	Update(ctx context.Context, film *Film) error
	SetAvailability(ctx context.Context, id int, available bool) error
	Delete(ctx context.Context, id int) error
}
