package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventManager/internal/lib/api/validate"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	type req struct {
		Email    string `json:"email" validate:"required,email"`
		Quantity int    `json:"quantity" validate:"min=1,max=10"`
	}

	err := validate.New().Struct(req{Email: "nope", Quantity: 11})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	resp := ValidationError(verrs)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field email is not a valid email", resp.Fields["email"])
	assert.Equal(t, "field quantity must be at most 10", resp.Fields["quantity"])
	assert.Contains(t, resp.Error, "field email is not a valid email")
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: "OK"}, OK())
	assert.Equal(t, Response{Status: "Error", Error: "boom"}, Error("boom"))
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: connection refused")

	var got Response
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = InternalError(r, "failed to get events", cause)
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, Error("failed to get events"), got)

	ExposeDetails(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "failed to get events", got.Error)
	assert.Equal(t, "pq: connection refused", got.Details)
}
