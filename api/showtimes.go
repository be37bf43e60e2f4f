package api

import "time"

type Showtime struct {
	Id        int       `json:"id"`
	Type      string    `json:"type"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Capacity  int       `json:"capacity"`
	Occupied  int       `json:"occupied"`
	FilmId    int       `json:"filmId"`
	FilmName  string    `json:"filmName"`
	RoomId    int       `json:"roomId"`
	RoomName  string    `json:"roomName"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateShowtimeRequest struct {
	FilmId int       `json:"filmId" validate:"required,min=1"`
	RoomId int       `json:"roomId" validate:"required,min=1"`
	Type   string    `json:"type" validate:"max=50"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type UpdateShowtimeRequest struct {
	FilmId   *int       `json:"filmId" validate:"omitempty,min=1"`
	RoomId   *int       `json:"roomId" validate:"omitempty,min=1"`
	Type     *string    `json:"type" validate:"omitempty,max=50"`
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
	Occupied *int       `json:"occupied" validate:"omitempty,min=0"`
}

type GetShowtimesParams struct {
	PaginationParams
	From *time.Time
	To   *time.Time
}

type ShowtimeResponse struct {
	Showtime Showtime `json:"showtime"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
	Metadata  Metadata   `json:"metadata"`
}

type CreateReservationRequest struct {
	TicketId int `json:"ticketId" validate:"required,min=1"`
}

type ReservationResponse struct {
	Showtime Showtime `json:"showtime"`
	Ticket   Ticket   `json:"ticket"`
}
