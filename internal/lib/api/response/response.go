package response

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  string            `json:"status"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details string            `json:"details,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

type detailsKey struct{}

// ExposeDetails makes InternalError include the underlying error. It is
// meant for local development only.
func ExposeDetails(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), detailsKey{}, true)))
	})
}

// InternalError hides err from the client unless ExposeDetails is in the
// middleware chain.
func InternalError(r *http.Request, msg string, err error) Response {
	resp := Error(msg)

	if expose, _ := r.Context().Value(detailsKey{}).(bool); expose && err != nil {
		resp.Details = err.Error()
	}

	return resp
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		var msg string

		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", err.Field())
		case "email":
			msg = fmt.Sprintf("field %s is not a valid email", err.Field())
		case "url":
			msg = fmt.Sprintf("field %s is not a valid URL", err.Field())
		case "uuid", "uuid4":
			msg = fmt.Sprintf("field %s is not a valid id", err.Field())
		case "min", "gte":
			msg = fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
		case "max", "lte":
			msg = fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
		case "oneof":
			msg = fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param())
		case "hhmm":
			msg = fmt.Sprintf("field %s must be in HH:MM format", err.Field())
		case "date":
			msg = fmt.Sprintf("field %s must be a date (YYYY-MM-DD)", err.Field())
		case "notpast":
			msg = fmt.Sprintf("field %s cannot be in the past", err.Field())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}

		errMsgs = append(errMsgs, msg)
		fields[err.Field()] = msg
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
		Fields: fields,
	}
}
