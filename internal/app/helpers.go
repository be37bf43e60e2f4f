package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/oapi-codegen/runtime"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	maxBodyBytes = 1_048_576
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var (
			syntaxError           *json.SyntaxError
			unmarshalTypeError    *json.UnmarshalTypeError
			invalidUnmarshalError *json.InvalidUnmarshalError
			maxBytesError         *http.MaxBytesError
		)

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		case errors.As(err, &invalidUnmarshalError):
			panic(err)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return id, nil
}

// bindQuery binds an optional query parameter. The result is nil when the
// parameter is absent.
func bindQuery[T any](qs url.Values, key, want string) (*T, error) {
	var value *T

	err := runtime.BindQueryParameter("form", true, false, key, qs, &value)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be %s", key, want)
	}

	return value, nil
}

func readIntQuery(qs url.Values, key string) (*int, error) {
	return bindQuery[int](qs, key, "an integer")
}

func readBoolQuery(qs url.Values, key string) (*bool, error) {
	return bindQuery[bool](qs, key, "a boolean")
}

func readTimeQuery(qs url.Values, key string) (*time.Time, error) {
	return bindQuery[time.Time](qs, key, "an RFC 3339 timestamp")
}

func readPaginationParams(qs url.Values) (api.PaginationParams, error) {
	var (
		params api.PaginationParams
		err    error
	)

	params.Page, err = readIntQuery(qs, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = readIntQuery(qs, "pageSize")
	if err != nil {
		return params, err
	}

	return params, nil
}

func toPagination(params api.PaginationParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

// sendMail delivers a templated mail in the background. Failures are logged
// and never reach the client.
func (app *Application) sendMail(r *http.Request, recipient func(context.Context) (string, error), templateFile string, data any) {
	ctx := context.WithoutCancel(r.Context())
	logger := app.contextGetLogger(r).With("template", templateFile)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending mail", "panic", err)
			}
		}()

		email, err := recipient(ctx)
		if err != nil {
			logger.Error("failed to resolve mail recipient", "error", err)
			return
		}

		err = app.mailer.Send(email, templateFile, data)
		if err != nil {
			logger.Error("failed to send mail", "error", err)
			return
		}

		logger.Info("mail sent successfully")
	}()
}
