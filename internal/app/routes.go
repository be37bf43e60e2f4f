package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.logRequest)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Get("/users/me", app.GetCurrentUser)

	r.Route("/films", func(r chi.Router) {
		r.Get("/", app.GetFilms)
		r.Get("/{filmId}", app.GetFilm)
		r.Get("/{filmId}/showtimes", app.GetFilmShowtimes)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication, app.requireAdmin)

			r.Post("/", app.CreateFilm)
			r.Patch("/{filmId}", app.UpdateFilm)
			r.Delete("/{filmId}", app.DeleteFilm)
		})
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", app.GetRooms)
		r.Get("/{roomId}", app.GetRoom)
		r.Get("/{roomId}/showtimes", app.GetRoomShowtimes)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication, app.requireAdmin)

			r.Post("/", app.CreateRoom)
			r.Patch("/{roomId}", app.UpdateRoom)
			r.Delete("/{roomId}", app.DeleteRoom)
		})
	})

	r.Route("/showtimes", func(r chi.Router) {
		r.Get("/", app.GetShowtimes)
		r.Get("/{showtimeId}", app.GetShowtime)

		r.With(app.requireAuthentication).Post("/{showtimeId}/reservations", app.CreateReservation)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthentication, app.requireAdmin)

			r.Post("/", app.CreateShowtime)
			r.Patch("/{showtimeId}", app.UpdateShowtime)
			r.Delete("/{showtimeId}", app.DeleteShowtime)
		})
	})

	r.With(app.requireAuthentication).Route("/tickets", func(r chi.Router) {
		r.Get("/", app.GetTickets)
		r.Post("/", app.PurchaseTicket)
		r.Get("/{ticketId}", app.GetTicket)
	})

	r.With(app.requireAuthentication).Route("/accounts/{accountId}", func(r chi.Router) {
		r.Get("/", app.GetAccount)
		r.Post("/deposits", app.Deposit)
		r.Post("/withdrawals", app.Withdraw)
		r.Get("/transactions", app.GetTransactions)
	})

	r.With(app.requireAuthentication, app.requireAdmin).Route("/roles", func(r chi.Router) {
		r.Get("/", app.GetRoles)
		r.Post("/", app.CreateRole)
		r.Get("/{roleId}", app.GetRole)
		r.Patch("/{roleId}", app.UpdateRole)
		r.Delete("/{roleId}", app.DeleteRole)
	})

	return r
}
