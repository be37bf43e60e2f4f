package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"createdAt":  {},
	"redeemedAt": {},
	"reference":  {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k, v := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		switch nested := v.(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if obj, ok := item.(map[string]any); ok {
					cleanMap(obj)
				}
			}
		}
	}
}

func jsonBody(t testing.TB, v any) io.Reader {
	t.Helper()

	if s, ok := v.(string); ok {
		return strings.NewReader(s)
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// do sends a request through the router and returns the recorded response.
func (app *TestApp) do(t testing.TB, method, url string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, prepareRequest(method, url, reader, nil, cookies))

	return rec.Result()
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

// registerAndLogin signs a new customer up through the API and returns its
// session cookies together with the user and account ids.
func (app *TestApp) registerAndLogin(t testing.TB, email string) ([]*http.Cookie, api.UserResponse) {
	t.Helper()

	res := app.do(t, http.MethodPost, "/users", api.RegisterRequest{Email: email, Password: TestPassword}, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	user := decodeBody[api.UserResponse](t, res)

	res = app.do(t, http.MethodPost, "/sessions", api.LoginRequest{Email: email, Password: TestPassword}, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	return cookies, user
}

func (app *TestApp) adminCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	cookies, user := app.registerAndLogin(t, TestAdminEmail)

	_, err := app.DB.Exec(context.Background(),
		`UPDATE users SET role_id = (SELECT id FROM roles WHERE is_admin LIMIT 1) WHERE id = $1`, user.Id)
	require.NoError(t, err)

	return cookies
}

// fundedCustomer registers a customer and deposits amount on its account.
func (app *TestApp) fundedCustomer(t testing.TB, email, amount string) ([]*http.Cookie, api.UserResponse) {
	t.Helper()

	cookies, user := app.registerAndLogin(t, email)

	res := app.do(t, http.MethodPost, fmt.Sprintf("/accounts/%d/deposits", user.AccountId),
		fmt.Sprintf(`{"amount": %q}`, amount), cookies)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	return cookies, user
}

func (app *TestApp) buyTicket(t testing.TB, cookies []*http.Cookie, accountId int, kind string) api.Ticket {
	t.Helper()

	res := app.do(t, http.MethodPost, "/tickets",
		api.PurchaseTicketRequest{AccountId: accountId, Name: "Evening out", Kind: kind}, cookies)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	return decodeBody[api.PurchaseResponse](t, res).Ticket
}

func (app *TestApp) createFilm(t testing.TB, admin []*http.Cookie, name string, runtime int) api.Film {
	t.Helper()

	res := app.do(t, http.MethodPost, "/films", api.CreateFilmRequest{Name: name, Runtime: runtime}, admin)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	return decodeBody[api.FilmResponse](t, res).Film
}

func (app *TestApp) createRoom(t testing.TB, admin []*http.Cookie, name string, capacity int) api.Room {
	t.Helper()

	res := app.do(t, http.MethodPost, "/rooms", api.CreateRoomRequest{Name: name, Capacity: capacity}, admin)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	return decodeBody[api.RoomResponse](t, res).Room
}

func (app *TestApp) getFilm(t testing.TB, id int) api.Film {
	t.Helper()

	res := app.do(t, http.MethodGet, fmt.Sprintf("/films/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	return decodeBody[api.FilmResponse](t, res).Film
}

func (app *TestApp) getShowtime(t testing.TB, id int) api.Showtime {
	t.Helper()

	res := app.do(t, http.MethodGet, fmt.Sprintf("/showtimes/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	return decodeBody[api.ShowtimeResponse](t, res).Showtime
}

func truncateAll(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), `TRUNCATE ticket_redemptions, tickets, showtimes, films, rooms,
		transactions, accounts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}
