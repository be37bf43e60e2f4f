package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTicketRepo struct {
	mock.Mock
	domain.TicketRepository
}

func (m *MockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepo) GetOwnedBy(ctx context.Context, ticketID, userID int) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetAllByUser(
	ctx context.Context,
	userID int,
	filters domain.TicketFilters) ([]domain.Ticket, *domain.Metadata, error) {

	args := m.Called(ctx, userID, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Ticket), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockTicketRepo) Redeem(ctx context.Context, ticketID, userID, showtimeID int) (int, error) {
	args := m.Called(ctx, ticketID, userID, showtimeID)
	return args.Int(0), args.Error(1)
}
