package getAllEvents

import (
	"context"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/lib/api/validate"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type EventsResponse struct {
	response.Response
	Events     []models.Event    `json:"events"`
	Pagination models.Pagination `json:"pagination"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, models.Pagination, error)
}

func New(log *slog.Logger, lister EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		filter, errMsg := parseFilter(r.URL.Query())
		if errMsg != "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(errMsg))
			return
		}

		events, page, err := lister.List(r.Context(), filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.InternalError(r, "failed to get events", err))
			return
		}

		log.Debug("events retrieved successfully", slog.Int("count", len(events)), slog.Int("total", page.Total))

		responseOK(w, r, events, page)
	}
}

var (
	categories = map[string]bool{
		"music": true, "sports": true, "arts": true, "business": true,
		"food": true, "health": true, "tech": true, "other": true,
	}
	statuses = map[string]bool{"draft": true, "published": true, "cancelled": true}
	sorts    = map[string]bool{"date": true, "name": true, "price": true}
)

// parseFilter reads the listing query. It returns a client facing message
// for the first invalid parameter.
func parseFilter(q url.Values) (models.EventFilter, string) {
	f := models.EventFilter{
		Search: q.Get("search"),
	}

	if c := q.Get("category"); c != "" {
		if !categories[c] {
			return f, "invalid category"
		}
		f.Category = models.EventCategory(c)
	}

	if s := q.Get("status"); s != "" {
		if !statuses[s] {
			return f, "invalid status"
		}
		f.Status = models.EventStatus(s)
	}

	var err error
	if f.Page, err = intParam(q, "page"); err != nil {
		return f, "invalid page"
	}
	if f.Limit, err = intParam(q, "limit"); err != nil {
		return f, "invalid limit"
	}

	if f.DateFrom, err = dateParam(q, "dateFrom"); err != nil {
		return f, "invalid dateFrom"
	}
	if f.DateTo, err = dateParam(q, "dateTo"); err != nil {
		return f, "invalid dateTo"
	}

	if f.PriceMin, err = priceParam(q, "priceMin"); err != nil {
		return f, "invalid priceMin"
	}
	if f.PriceMax, err = priceParam(q, "priceMax"); err != nil {
		return f, "invalid priceMax"
	}

	if s := q.Get("sortBy"); s != "" {
		if !sorts[s] {
			return f, "sortBy must be one of: date name price"
		}
		f.SortBy = models.SortField(s)
	}

	switch q.Get("sortOrder") {
	case "", "asc":
	case "desc":
		f.SortDesc = true
	default:
		return f, "sortOrder must be one of: asc desc"
	}

	return f, ""
}

func intParam(q url.Values, key string) (int, error) {
	s := q.Get(key)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func dateParam(q url.Values, key string) (*time.Time, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}

	t, err := validate.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func priceParam(q url.Values, key string) (*decimal.Decimal, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event, page models.Pagination) {
	render.JSON(w, r, EventsResponse{
		Response:   response.OK(),
		Events:     events,
		Pagination: page,
	})
}
