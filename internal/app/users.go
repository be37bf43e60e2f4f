package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("User ID in session but not found in DB", "userId", userId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	account, err := app.accountRepo.GetByUser(r.Context(), userId)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiUser(user, account), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiUser(user *domain.User, account *domain.Account) api.UserResponse {
	resp := api.UserResponse{
		Id:        user.ID,
		Email:     user.Email,
		RoleId:    user.RoleID,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}

	if account != nil {
		resp.AccountId = account.ID
	}

	return resp
}
