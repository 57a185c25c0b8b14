package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalTicketsSold int             `json:"total_tickets_sold"`
	TotalBookings    int             `json:"total_bookings"`
	TotalEvents      int             `json:"total_events"`
	PublishedEvents  int             `json:"published_events"`
	UpcomingEvents   int             `json:"upcoming_events"`
}

type EventRevenue struct {
	EventID     string          `json:"event_id"`
	EventName   string          `json:"event_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	TicketsSold int             `json:"tickets_sold"`
}

type TicketTypeSales struct {
	TicketType string          `json:"ticket_type"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type DailySales struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Tickets int             `json:"tickets"`
}

type RecentBooking struct {
	BookingID    string          `json:"booking_id"`
	EventName    string          `json:"event_name"`
	AttendeeName string          `json:"attendee_name"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	BookingDate  time.Time       `json:"booking_date"`
}

type Dashboard struct {
	Overview       DashboardOverview `json:"overview"`
	RevenueByEvent []EventRevenue    `json:"revenue_by_event"`
	TicketsByType  []TicketTypeSales `json:"tickets_by_type"`
	SalesOverTime  []DailySales      `json:"sales_over_time"`
	RecentBookings []RecentBooking   `json:"recent_bookings"`
}

type TicketSales struct {
	TicketType string          `json:"ticket_type"`
	Price      decimal.Decimal `json:"price"`
	Sold       int             `json:"sold"`
	Available  int             `json:"available"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// EventSales is the raw per-event aggregate read from storage.
type EventSales struct {
	TotalRevenue     decimal.Decimal
	TotalTicketsSold int
	TotalBookings    int
	TotalCapacity    int
	CheckedIn        int
	SalesByTicket    []TicketSales
	SalesOverTime    []DailySales
}

type EventOverview struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalTicketsSold int             `json:"total_tickets_sold"`
	TotalBookings    int             `json:"total_bookings"`
	TotalCapacity    int             `json:"total_capacity"`
	PercentageSold   int             `json:"percentage_sold"`
	CheckedIn        int             `json:"checked_in"`
	CheckInRate      int             `json:"check_in_rate"`
}

type EventAnalytics struct {
	Event         EventSummary  `json:"event"`
	Overview      EventOverview `json:"overview"`
	SalesByTicket []TicketSales `json:"sales_by_ticket"`
	SalesOverTime []DailySales  `json:"sales_over_time"`
}

type EventSummary struct {
	ID        string      `json:"id"`
	EventName string      `json:"event_name"`
	EventDate string      `json:"event_date"`
	Status    EventStatus `json:"status"`
}
