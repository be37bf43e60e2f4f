package api

import "time"

type Film struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Runtime   int       `json:"runtime"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateFilmRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Runtime int    `json:"runtime" validate:"min=0,max=1440"`
}

type UpdateFilmRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Runtime   *int    `json:"runtime" validate:"omitempty,min=0,max=1440"`
	Available *bool   `json:"available"`
}

type GetFilmsParams struct {
	PaginationParams
	Available *bool
}

type FilmResponse struct {
	Film Film `json:"film"`
}

type FilmListResponse struct {
	Films    []Film   `json:"films"`
	Metadata Metadata `json:"metadata"`
}
