package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) GetRooms(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination, err := readPaginationParams(qs)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetRoomsParams{PaginationParams: pagination}

	params.Accessible, err = readBoolQuery(qs, "accessible")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.UnderMaintenance, err = readBoolQuery(qs, "underMaintenance")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.RoomFilters{
		Accessible:       params.Accessible,
		UnderMaintenance: params.UnderMaintenance,
		Pagination:       toPagination(params.PaginationParams),
	}

	rooms, metadata, err := app.roomRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RoomListResponse{
		Rooms:    make([]api.Room, len(rooms)),
		Metadata: toApiMetadata(metadata),
	}

	for i := range rooms {
		resp.Rooms[i] = toApiRoom(&rooms[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roomId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	room, err := app.roomRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.RoomResponse{Room: toApiRoom(room)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRoomRequest

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

	room := domain.Room{
		Name:             input.Name,
		Description:      input.Description,
		Images:           input.Images,
		Type:             input.Type,
		Capacity:         input.Capacity,
		Accessible:       input.Accessible,
		UnderMaintenance: input.UnderMaintenance,
	}

	err = app.roomRepo.Create(r.Context(), &room)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("room created", "roomId", room.ID)

	err = app.writeJSON(w, http.StatusCreated, api.RoomResponse{Room: toApiRoom(&room)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateRoom changes the room only. Showtimes keep the capacity they were
// scheduled with until they are updated themselves.
func (app *Application) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roomId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateRoomRequest

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

	room, err := app.roomRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Images != nil {
		room.Images = *input.Images
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.Accessible != nil {
		room.Accessible = *input.Accessible
	}
	if input.UnderMaintenance != nil {
		room.UnderMaintenance = *input.UnderMaintenance
	}

	err = app.roomRepo.Update(r.Context(), room)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.RoomResponse{Room: toApiRoom(room)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roomId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.roomRepo.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetRoomShowtimes(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roomId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.roomRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.listShowtimes(w, r, domain.ShowtimeFilters{RoomID: &id})
}

func toApiRoom(room *domain.Room) api.Room {
	return api.Room{
		Id:               room.ID,
		Name:             room.Name,
		Description:      room.Description,
		Images:           room.Images,
		Type:             room.Type,
		Capacity:         room.Capacity,
		Accessible:       room.Accessible,
		UnderMaintenance: room.UnderMaintenance,
		CreatedAt:        room.CreatedAt,
	}
}
