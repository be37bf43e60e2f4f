package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
)

// CreateReservation takes a seat of the showtime with one use of the
// caller's ticket.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	showtimeId, err := readIDParam(r, "showtimeId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.CreateReservationRequest

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

	userId := app.contextGetUserId(r)

	reservation, err := app.reservationService.Reserve(r.Context(), showtimeId, input.TicketId, userId)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("seat reserved",
		"showtimeId", showtimeId,
		"ticketId", input.TicketId,
		"remainingUses", reservation.Ticket.RemainingUses,
	)

	resp := api.ReservationResponse{
		Showtime: toApiShowtime(&reservation.Showtime),
		Ticket:   toApiTicket(&reservation.Ticket),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
