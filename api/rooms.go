package api

import "time"

type Room struct {
	Id               int       `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Images           string    `json:"images"`
	Type             string    `json:"type"`
	Capacity         int       `json:"capacity"`
	Accessible       bool      `json:"accessible"`
	UnderMaintenance bool      `json:"underMaintenance"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateRoomRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	Description      string `json:"description" validate:"max=1000"`
	Images           string `json:"images" validate:"max=1000"`
	Type             string `json:"type" validate:"max=50"`
	Capacity         int    `json:"capacity" validate:"min=0,max=10000"`
	Accessible       bool   `json:"accessible"`
	UnderMaintenance bool   `json:"underMaintenance"`
}

type UpdateRoomRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description" validate:"omitempty,max=1000"`
	Images           *string `json:"images" validate:"omitempty,max=1000"`
	Type             *string `json:"type" validate:"omitempty,max=50"`
	Capacity         *int    `json:"capacity" validate:"omitempty,min=0,max=10000"`
	Accessible       *bool   `json:"accessible"`
	UnderMaintenance *bool   `json:"underMaintenance"`
}

type GetRoomsParams struct {
	PaginationParams
	Accessible       *bool
	UnderMaintenance *bool
}

type RoomResponse struct {
	Room Room `json:"room"`
}

type RoomListResponse struct {
	Rooms    []Room   `json:"rooms"`
	Metadata Metadata `json:"metadata"`
}
