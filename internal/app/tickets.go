package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/service"
)

func (app *Application) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	var input api.PurchaseTicketRequest

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

	userId := app.contextGetUserId(r)

	purchase, err := app.accountService.PurchaseTicket(r.Context(), service.PurchaseTicketParams{
		AccountID: input.AccountId,
		UserID:    userId,
		Name:      input.Name,
		Kind:      domain.TicketKind(input.Kind),
	})
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("ticket purchased",
		"ticketId", purchase.Ticket.ID,
		"kind", purchase.Ticket.Kind,
		"reference", purchase.Transaction.Reference,
	)

	app.sendMail(r, app.userEmail(userId), "ticket_receipt.tmpl", map[string]any{
		"name":      purchase.Ticket.Name,
		"kind":      purchase.Ticket.Kind,
		"uses":      purchase.Ticket.RemainingUses,
		"amount":    purchase.Transaction.Amount.StringFixed(2),
		"balance":   purchase.Account.Balance.StringFixed(2),
		"reference": purchase.Transaction.Reference.String(),
	})

	resp := api.PurchaseResponse{
		Ticket:      toApiTicket(&purchase.Ticket),
		Account:     toApiAccount(&purchase.Account),
		Transaction: toApiTransaction(&purchase.Transaction),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTickets(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination, err := readPaginationParams(qs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetTicketsParams{PaginationParams: pagination}
	if kind := qs.Get("kind"); kind != "" {
		params.Kind = &kind
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.TicketFilters{Pagination: toPagination(params.PaginationParams)}
	if params.Kind != nil {
		kind := domain.TicketKind(*params.Kind)
		filters.Kind = &kind
	}

	tickets, metadata, err := app.ticketRepo.GetAllByUser(r.Context(), app.contextGetUserId(r), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketListResponse{
		Tickets:  make([]api.Ticket, len(tickets)),
		Metadata: toApiMetadata(metadata),
	}

	for i := range tickets {
		resp.Tickets[i] = toApiTicket(&tickets[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetTicket returns one of the caller's tickets with its redemption history.
// Tickets of other users are reported as missing.
func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "ticketId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	ticket, err := app.ticketRepo.GetOwnedBy(r.Context(), id, app.contextGetUserId(r))
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.TicketResponse{Ticket: toApiTicket(ticket)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) userEmail(userId int) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		user, err := app.userRepo.GetById(ctx, userId)
		if err != nil {
			return "", err
		}

		return user.Email, nil
	}
}

func toApiTicket(ticket *domain.Ticket) api.Ticket {
	resp := api.Ticket{
		Id:            ticket.ID,
		Name:          ticket.Name,
		Kind:          string(ticket.Kind),
		RemainingUses: ticket.RemainingUses,
		CreatedAt:     ticket.CreatedAt,
	}

	if len(ticket.Redemptions) > 0 {
		resp.Redemptions = make([]api.Redemption, len(ticket.Redemptions))

		for i, redemption := range ticket.Redemptions {
			resp.Redemptions[i] = api.Redemption{
				ShowtimeId: redemption.ShowtimeID,
				RedeemedAt: redemption.RedeemedAt,
			}
		}
	}

	return resp
}
