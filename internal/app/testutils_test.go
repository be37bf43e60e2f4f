package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/service"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
)

const (
	testUserId  = 7
	testAdminId = 1
)

type testDeps struct {
	repos  Repositories
	mailer mailer.Mailer
	prices service.TicketPrices
}

// newTestApplication builds an Application on mock repositories. Options
// replace the mocks before the services are wired.
func newTestApplication(opts ...func(*testDeps)) *Application {
	deps := &testDeps{
		repos: Repositories{
			Transactor:   &mocks.MockTransactor{},
			Films:        &mocks.MockFilmRepo{},
			Rooms:        &mocks.MockRoomRepo{},
			Showtimes:    &mocks.MockShowtimeRepo{},
			Tickets:      &mocks.MockTicketRepo{},
			Accounts:     &mocks.MockAccountRepo{},
			Transactions: &mocks.MockTransactionRepo{},
			Users:        &mocks.MockUserRepo{GetByIdFunc: getTestUser},
			Roles:        &mocks.MockRoleRepo{},
		},
		mailer: mailer.NewMockMailer(),
	}

	for _, opt := range opts {
		opt(deps)
	}

	cfg := Config{
		Env:          "test",
		Location:     time.UTC,
		TicketPrices: deps.prices,
	}

	return NewApp(
		cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		nil,
		validator.NewValidator(),
		deps.mailer,
		scs.New(),
		deps.repos,
	)
}

// getTestUser knows one admin and one customer.
func getTestUser(ctx context.Context, id int) (*domain.User, error) {
	switch id {
	case testAdminId:
		return &domain.User{ID: testAdminId, Email: "admin@example.com", RoleID: 2, IsAdmin: true}, nil
	case testUserId:
		return &domain.User{ID: testUserId, Email: "freddie@example.com", RoleID: 1}, nil
	default:
		return nil, domain.ErrUserNotFound
	}
}

// sessionCookie commits a session for userId and returns the cookie carrying it.
func sessionCookie(t *testing.T, app *Application, userId int) *http.Cookie {
	t.Helper()

	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return &http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// serve runs the request through the full router, logged in as userId when
// it is not zero.
func serve(t *testing.T, app *Application, method, url string, body any, userId int) *httptest.ResponseRecorder {
	t.Helper()

	w, r := executeRequest(t, method, url, body)
	if userId != 0 {
		r.AddCookie(sessionCookie(t, app, userId))
	}

	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func wantError(status int, message string) struct {
	wantStatus     int
	wantErrMessage string
} {
	return struct {
		wantStatus     int
		wantErrMessage string
	}{wantStatus: status, wantErrMessage: message}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return v
}

// 2024-03-11 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2024, time.March, 11, hour, min, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}
