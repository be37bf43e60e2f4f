package service

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type ReservationService struct {
	tx        domain.Transactor
	showtimes domain.ShowtimeRepository
	tickets   domain.TicketRepository
}

func NewReservationService(
	tx domain.Transactor,
	showtimes domain.ShowtimeRepository,
	tickets domain.TicketRepository) *ReservationService {

	return &ReservationService{
		tx:        tx,
		showtimes: showtimes,
		tickets:   tickets,
	}
}

// Reservation is the state of a showtime and a ticket right after one seat was
// taken with that ticket.
type Reservation struct {
	Showtime domain.Showtime
	Ticket   domain.Ticket
}

// Reserve spends one use of the caller's ticket on a seat of the showtime.
// The seat and the use are taken together or not at all.
func (s *ReservationService) Reserve(ctx context.Context, showtimeID, ticketID, userID int) (*Reservation, error) {
	var reservation Reservation

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		showtime, err := s.showtimes.GetById(ctx, showtimeID)
		if err != nil {
			return err
		}

		if showtime.Full() {
			return domain.ErrShowtimeFull
		}

		ticket, err := s.tickets.GetOwnedBy(ctx, ticketID, userID)
		if err != nil {
			return err
		}

		if ticket.Exhausted() {
			return domain.ErrTicketExhausted
		}

		ticket.RemainingUses, err = s.tickets.Redeem(ctx, ticket.ID, userID, showtime.ID)
		if err != nil {
			return err
		}

		showtime.Occupied, err = s.showtimes.IncrementOccupied(ctx, showtime.ID)
		if err != nil {
			return err
		}

		ticket.Redemptions = append(ticket.Redemptions, domain.Redemption{
			ShowtimeID: showtime.ID,
			RedeemedAt: time.Now(),
		})

		reservation = Reservation{Showtime: *showtime, Ticket: *ticket}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}
