package api

import "time"

type Ticket struct {
	Id            int          `json:"id"`
	Name          string       `json:"name"`
	Kind          string       `json:"kind"`
	RemainingUses int          `json:"remainingUses"`
	Redemptions   []Redemption `json:"redemptions,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type Redemption struct {
	ShowtimeId int       `json:"showtimeId"`
	RedeemedAt time.Time `json:"redeemedAt"`
}

type PurchaseTicketRequest struct {
	AccountId int    `json:"accountId" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Kind      string `json:"kind" validate:"required,ticket_kind"`
}

type GetTicketsParams struct {
	PaginationParams
	Kind *string `validate:"omitempty,ticket_kind"`
}

type TicketResponse struct {
	Ticket Ticket `json:"ticket"`
}

type TicketListResponse struct {
	Tickets  []Ticket `json:"tickets"`
	Metadata Metadata `json:"metadata"`
}

type PurchaseResponse struct {
	Ticket      Ticket      `json:"ticket"`
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}
