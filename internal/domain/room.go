package domain

import (
	"context"
	"time"
)

type Room struct {
	ID               int
	Name             string
	Description      string
	Images           string
	Type             string
	Capacity         int
	Accessible       bool
	UnderMaintenance bool
	CreatedAt        time.Time
}

type RoomFilters struct {
	Accessible       *bool
	UnderMaintenance *bool
	Pagination
}

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetById(ctx context.Context, id int) (*Room, error)
	GetAll(ctx context.Context, filters RoomFilters) ([]Room, *Metadata, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int) error
}
