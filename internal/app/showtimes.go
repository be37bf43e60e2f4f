package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/service"
)

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	app.listShowtimes(w, r, domain.ShowtimeFilters{})
}

// listShowtimes completes filters with the page and interval query parameters
// and writes the matching showtimes.
func (app *Application) listShowtimes(w http.ResponseWriter, r *http.Request, filters domain.ShowtimeFilters) {
	qs := r.URL.Query()

	pagination, err := readPaginationParams(qs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetShowtimesParams{PaginationParams: pagination}

	params.From, err = readTimeQuery(qs, "from")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.To, err = readTimeQuery(qs, "to")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters.From = params.From
	filters.To = params.To
	filters.Pagination = toPagination(params.PaginationParams)

	showtimes, metadata, err := app.showtimeService.List(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: make([]api.Showtime, len(showtimes)),
		Metadata:  toApiMetadata(metadata),
	}

	for i := range showtimes {
		resp.Showtimes[i] = toApiShowtime(&showtimes[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	showtime, err := app.showtimeService.Get(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ShowtimeResponse{Showtime: toApiShowtime(showtime)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	showtime, err := app.showtimeService.Create(r.Context(), service.CreateShowtimeParams{
		FilmID: input.FilmId,
		RoomID: input.RoomId,
		Type:   input.Type,
		Start:  input.Start,
		End:    input.End,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("showtime created", "showtimeId", showtime.ID, "filmId", showtime.FilmID, "roomId", showtime.RoomID)

	err = app.writeJSON(w, http.StatusCreated, api.ShowtimeResponse{Showtime: toApiShowtime(showtime)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateShowtimeRequest

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

	showtime, err := app.showtimeService.Update(r.Context(), id, service.ShowtimePatch{
		Type:     input.Type,
		Start:    input.Start,
		End:      input.End,
		FilmID:   input.FilmId,
		RoomID:   input.RoomId,
		Occupied: input.Occupied,
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.ShowtimeResponse{Showtime: toApiShowtime(showtime)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteShowtime answers with the deleted showtime.
func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	showtime, err := app.showtimeService.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("showtime deleted", "showtimeId", id, "filmId", showtime.FilmID)

	err = app.writeJSON(w, http.StatusOK, api.ShowtimeResponse{Showtime: toApiShowtime(showtime)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowtime(showtime *domain.Showtime) api.Showtime {
	return api.Showtime{
		Id:        showtime.ID,
		Type:      showtime.Type,
		Start:     showtime.Start,
		End:       showtime.End,
		Capacity:  showtime.Capacity,
		Occupied:  showtime.Occupied,
		FilmId:    showtime.FilmID,
		FilmName:  showtime.FilmName,
		RoomId:    showtime.RoomID,
		RoomName:  showtime.RoomName,
		CreatedAt: showtime.CreatedAt,
	}
}
