package domain

import (
	"context"
	"time"
)

type Showtime struct {
	ID        int
	Capacity  int
	Occupied  int
	Type      string
	Start     time.Time
	End       time.Time
	FilmID    int
	FilmName  string
	RoomID    int
	RoomName  string
	CreatedAt time.Time
}

func (s *Showtime) Full() bool {
	return s.Occupied >= s.Capacity
}

type ShowtimeFilters struct {
	FilmID *int
	RoomID *int
	From   *time.Time
	To     *time.Time
	Pagination
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetById(ctx context.Context, id int) (*Showtime, error)
	// GetByIdForUpdate locks the showtime row until the surrounding transaction ends.
	GetByIdForUpdate(ctx context.Context, id int) (*Showtime, error)
	// GetByFilm and GetByRoom skip the showtime with id excludeID; zero excludes nothing.
	GetByFilm(ctx context.Context, filmID, excludeID int) ([]Showtime, error)
	GetByRoom(ctx context.Context, roomID, excludeID int) ([]Showtime, error)
	GetAll(ctx context.Context, filters ShowtimeFilters) ([]Showtime, *Metadata, error)
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
	// LockScopes serializes schedule changes touching the given films and rooms
	// for the rest of the surrounding transaction.
	LockScopes(ctx context.Context, filmIDs, roomIDs []int) error
	// IncrementOccupied takes one seat and returns the new occupancy, failing
	// with ErrShowtimeFull when none is left.
	IncrementOccupied(ctx context.Context, id int) (int, error)
}
