package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := app.roleRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RoleListResponse{Roles: make([]api.Role, len(roles))}
	for i := range roles {
		resp.Roles[i] = toApiRole(&roles[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRole(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roleId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	role, err := app.roleRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.RoleResponse{Role: toApiRole(role)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRole(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRoleRequest

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

	role := domain.Role{
		Name:    input.Name,
		Type:    input.Type,
		IsAdmin: input.IsAdmin,
	}

	err = app.roleRepo.Create(r.Context(), &role)
	if err != nil {
		app.handleRoleError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.RoleResponse{Role: toApiRole(&role)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roleId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateRoleRequest

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

	role, err := app.roleRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Type != nil {
		role.Type = *input.Type
	}
	if input.IsAdmin != nil {
		role.IsAdmin = *input.IsAdmin
	}

	err = app.roleRepo.Update(r.Context(), role)
	if err != nil {
		app.handleRoleError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.RoleResponse{Role: toApiRole(role)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "roleId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.roleRepo.Delete(r.Context(), id)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) handleRoleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrDuplicateRole) {
		app.errorResponse(w, r, http.StatusConflict, "A role with this type already exists")
		return
	}

	app.handleServiceError(w, r, err)
}

func toApiRole(role *domain.Role) api.Role {
	return api.Role{
		Id:      role.ID,
		Name:    role.Name,
		Type:    role.Type,
		IsAdmin: role.IsAdmin,
	}
}
