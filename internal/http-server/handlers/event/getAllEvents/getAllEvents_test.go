package getAllEvents

import (
	"encoding/json"
	"errors"
	"eventManager/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	minPrice := decimal.RequireFromString("10")

	testEvents := []models.Event{
		{ID: "e1", EventName: "Jazz Night", Status: models.EventStatusPublished, MinPrice: &minPrice},
		{ID: "e2", EventName: "Free Talk", Status: models.EventStatusPublished},
	}

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, resp EventsResponse)
	}{
		{
			name:  "Success with defaults",
			query: "",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("List", mock.Anything, models.EventFilter{}).
					Return(testEvents, models.NewPagination(1, 20, 2), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp EventsResponse) {
				require.Len(t, resp.Events, 2)
				assert.Equal(t, "e1", resp.Events[0].ID)
				require.NotNil(t, resp.Events[0].MinPrice)
				assert.True(t, resp.Events[0].MinPrice.Equal(minPrice))
				assert.Nil(t, resp.Events[1].MinPrice)
				assert.Equal(t, 2, resp.Pagination.Total)
				assert.False(t, resp.Pagination.HasNextPage)
			},
		},
		{
			name:  "Empty result",
			query: "?search=nothing",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("List", mock.Anything, models.EventFilter{Search: "nothing"}).
					Return([]models.Event{}, models.NewPagination(1, 20, 0), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp EventsResponse) {
				assert.Empty(t, resp.Events)
				assert.Equal(t, 0, resp.Pagination.TotalPages)
			},
		},
		{
			name:           "Bad sort field",
			query:          "?sortBy=popularity",
			mockSetup:      func(m *mocks.EventsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"sortBy must be one of: date name price"}`,
		},
		{
			name:           "Bad price",
			query:          "?priceMin=cheap",
			mockSetup:      func(m *mocks.EventsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid priceMin"}`,
		},
		{
			name:  "Storage failure",
			query: "",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("List", mock.Anything, mock.Anything).
					Return(nil, models.Pagination{}, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewEventsLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/events", New(logger, lister))

			req := httptest.NewRequest(http.MethodGet, "/events"+tc.query, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}

			if tc.checkBody != nil {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				tc.checkBody(t, resp)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	lo := decimal.RequireFromString("5")
	hi := decimal.RequireFromString("49.99")

	q := url.Values{}
	q.Set("search", "jazz")
	q.Set("category", "music")
	q.Set("status", "cancelled")
	q.Set("dateFrom", "2026-06-01")
	q.Set("dateTo", "2026-06-30")
	q.Set("priceMin", "5")
	q.Set("priceMax", "49.99")
	q.Set("page", "3")
	q.Set("limit", "10")
	q.Set("sortBy", "price")
	q.Set("sortOrder", "desc")

	got, msg := parseFilter(q)
	require.Empty(t, msg)

	assert.Equal(t, "jazz", got.Search)
	assert.Equal(t, models.CategoryMusic, got.Category)
	assert.Equal(t, models.EventStatusCancelled, got.Status)
	assert.Equal(t, from, *got.DateFrom)
	assert.Equal(t, to, *got.DateTo)
	assert.True(t, lo.Equal(*got.PriceMin))
	assert.True(t, hi.Equal(*got.PriceMax))
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, models.SortByPrice, got.SortBy)
	assert.True(t, got.SortDesc)
}

func TestParseFilterRejects(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"category=party":    "invalid category",
		"status=archived":   "invalid status",
		"page=two":          "invalid page",
		"limit=1.5":         "invalid limit",
		"dateFrom=tomorrow": "invalid dateFrom",
		"dateTo=31/12/2026": "invalid dateTo",
		"priceMax=free":     "invalid priceMax",
		"sortOrder=up":      "sortOrder must be one of: asc desc",
	}

	for raw, want := range testCases {
		q, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, msg := parseFilter(q)
		assert.Equal(t, want, msg, raw)
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, []models.Event{{ID: "e1"}}, models.NewPagination(2, 1, 3))

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actualResponse))

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	require.Len(t, actualResponse.Events, 1)
	assert.True(t, actualResponse.Pagination.HasNextPage)
	assert.True(t, actualResponse.Pagination.HasPrevPage)
}
