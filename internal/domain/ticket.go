package domain

import (
	"context"
	"time"
)

type TicketKind string

const (
	TicketKindSimple TicketKind = "simple"
	TicketKindGold   TicketKind = "gold"
)

// Uses returns how many reservations a fresh ticket of this kind allows.
func (k TicketKind) Uses() int {
	switch k {
	case TicketKindGold:
		return 10
	case TicketKindSimple:
		return 1
	default:
		return 0
	}
}

func (k TicketKind) Valid() bool {
	return k.Uses() > 0
}

type Ticket struct {
	ID            int
	Name          string
	Kind          TicketKind
	RemainingUses int
	UserID        int
	Redemptions   []Redemption
	CreatedAt     time.Time
}

// Redemption records one use of a ticket against a showtime.
type Redemption struct {
	ShowtimeID int
	RedeemedAt time.Time
}

func NewTicket(name string, kind TicketKind, userID int) *Ticket {
	return &Ticket{
		Name:          name,
		Kind:          kind,
		RemainingUses: kind.Uses(),
		UserID:        userID,
	}
}

func (t *Ticket) Exhausted() bool {
	return t.RemainingUses < 1
}

type TicketFilters struct {
	Kind *TicketKind
	Pagination
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	// GetOwnedBy only finds tickets belonging to userID.
	GetOwnedBy(ctx context.Context, ticketID, userID int) (*Ticket, error)
	GetAllByUser(ctx context.Context, userID int, filters TicketFilters) ([]Ticket, *Metadata, error)
	// Redeem spends one use against showtimeID, records it and returns the uses
	// left, failing with ErrTicketExhausted when none is left.
	Redeem(ctx context.Context, ticketID, userID, showtimeID int) (int, error)
}
