package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

type EventCategory string

const (
	CategoryMusic    EventCategory = "music"
	CategorySports   EventCategory = "sports"
	CategoryArts     EventCategory = "arts"
	CategoryBusiness EventCategory = "business"
	CategoryFood     EventCategory = "food"
	CategoryHealth   EventCategory = "health"
	CategoryTech     EventCategory = "tech"
	CategoryOther    EventCategory = "other"
)

type Event struct {
	ID          string        `json:"id"`
	OrganizerID string        `json:"organizer_id"`
	EventName   string        `json:"event_name"`
	Description string        `json:"description"`
	EventDate   time.Time     `json:"event_date"`
	EventTime   string        `json:"event_time"`
	EndTime     string        `json:"end_time,omitempty"`
	Venue       string        `json:"venue"`
	Address     string        `json:"address,omitempty"`
	Category    EventCategory `json:"category"`
	EventImage  string        `json:"event_image,omitempty"`
	Capacity    int           `json:"capacity"`
	Status      EventStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Derived from active tickets, nil when the event has none.
	MinPrice *decimal.Decimal `json:"min_price"`
	MaxPrice *decimal.Decimal `json:"max_price"`

	OrganizerName string `json:"organizer_name,omitempty"`
}

// EventUpdate carries a partial update, nil fields are left untouched.
type EventUpdate struct {
	EventName   *string
	Description *string
	EventDate   *time.Time
	EventTime   *string
	EndTime     *string
	Venue       *string
	Address     *string
	Category    *EventCategory
	EventImage  *string
	Capacity    *int
	Status      *EventStatus
}

type SortField string

const (
	SortByDate  SortField = "date"
	SortByName  SortField = "name"
	SortByPrice SortField = "price"
)

type EventFilter struct {
	Search   string
	Category EventCategory
	DateFrom *time.Time
	DateTo   *time.Time
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Status   EventStatus
	Page     int
	Limit    int
	SortBy   SortField
	SortDesc bool
	Now      time.Time
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
