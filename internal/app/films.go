package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) GetFilms(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination, err := readPaginationParams(qs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	available, err := readBoolQuery(qs, "available")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetFilmsParams{PaginationParams: pagination, Available: available}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.FilmFilters{
		Available:  params.Available,
		Pagination: toPagination(params.PaginationParams),
	}

	films, metadata, err := app.filmRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FilmListResponse{
		Films:    make([]api.Film, len(films)),
		Metadata: toApiMetadata(metadata),
	}

	for i := range films {
		resp.Films[i] = toApiFilm(&films[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "filmId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	film, err := app.filmRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.FilmResponse{Film: toApiFilm(film)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var input api.CreateFilmRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	film := domain.Film{Runtime: input.Runtime}
	film.Rename(input.Name)

	err = app.filmRepo.Create(r.Context(), &film)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("film created", "filmId", film.ID)

	err = app.writeJSON(w, http.StatusCreated, api.FilmResponse{Film: toApiFilm(&film)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "filmId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateFilmRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	film, err := app.filmRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	if input.Name != nil {
		film.Rename(*input.Name)
	}
	if input.Runtime != nil {
		film.Runtime = *input.Runtime
	}
	if input.Available != nil {
		film.Available = *input.Available
	}

	err = app.filmRepo.Update(r.Context(), film)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.FilmResponse{Film: toApiFilm(film)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "filmId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.filmRepo.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetFilmShowtimes(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "filmId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.filmRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.listShowtimes(w, r, domain.ShowtimeFilters{FilmID: &id})
}

func toApiFilm(film *domain.Film) api.Film {
	return api.Film{
		Id:        film.ID,
		Name:      film.Name,
		Slug:      film.Slug,
		Runtime:   film.Runtime,
		Available: film.Available,
		CreatedAt: film.CreatedAt,
	}
}
