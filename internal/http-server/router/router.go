// Package router mounts every HTTP endpoint of the service.
package router

import (
	"eventManager/internal/http-server/handlers/analytics/dashboard"
	"eventManager/internal/http-server/handlers/analytics/eventAnalytics"
	"eventManager/internal/http-server/handlers/auth/changePassword"
	"eventManager/internal/http-server/handlers/auth/login"
	"eventManager/internal/http-server/handlers/auth/me"
	"eventManager/internal/http-server/handlers/auth/register"
	"eventManager/internal/http-server/handlers/auth/updateProfile"
	"eventManager/internal/http-server/handlers/booking/checkIn"
	"eventManager/internal/http-server/handlers/booking/confirmBooking"
	"eventManager/internal/http-server/handlers/booking/createBooking"
	"eventManager/internal/http-server/handlers/booking/getAttendees"
	"eventManager/internal/http-server/handlers/booking/getMyBookings"
	"eventManager/internal/http-server/handlers/booking/stripeWebhook"
	"eventManager/internal/http-server/handlers/event/createEvent"
	"eventManager/internal/http-server/handlers/event/deleteEvent"
	"eventManager/internal/http-server/handlers/event/getAllEvents"
	"eventManager/internal/http-server/handlers/event/getEventInfo"
	"eventManager/internal/http-server/handlers/event/getMyEvents"
	"eventManager/internal/http-server/handlers/event/updateEvent"
	"eventManager/internal/http-server/handlers/health/dbHealth"
	"eventManager/internal/http-server/handlers/health/health"
	"eventManager/internal/http-server/handlers/notification/getNotifications"
	"eventManager/internal/http-server/handlers/notification/markAllRead"
	"eventManager/internal/http-server/handlers/notification/markRead"
	"eventManager/internal/http-server/handlers/notification/unreadCount"
	"eventManager/internal/http-server/handlers/ticket/createTicket"
	"eventManager/internal/http-server/handlers/ticket/deleteTicket"
	"eventManager/internal/http-server/handlers/ticket/getEventTickets"
	"eventManager/internal/http-server/handlers/ticket/updateTicket"
	"eventManager/internal/http-server/middleware/auth"
	"eventManager/internal/http-server/middleware/mwlogger"
	"eventManager/internal/http-server/middleware/mwmetrics"
	"eventManager/internal/http-server/middleware/ratelimit"
	"eventManager/internal/lib/api/response"
	"eventManager/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
)

type AuthService interface {
	register.UserRegisterer
	login.UserAuthenticator
	updateProfile.ProfileUpdater
	changePassword.PasswordChanger
}

type EventService interface {
	createEvent.EventCreator
	getAllEvents.EventsLister
	getEventInfo.EventGetter
	getMyEvents.OrganizerEventsGetter
	updateEvent.EventUpdater
	deleteEvent.EventDeleter
	getEventTickets.TicketsGetter
	createTicket.TicketCreator
	updateTicket.TicketUpdater
	deleteTicket.TicketDeleter
}

type BookingService interface {
	createBooking.BookingCreator
	confirmBooking.BookingConfirmer
	getMyBookings.BookingsGetter
	getAttendees.AttendeesGetter
	checkIn.CheckInToggler
	stripeWebhook.CheckoutCompleter
}

type AnalyticsService interface {
	dashboard.DashboardGetter
	eventAnalytics.EventAnalyticsGetter
}

type NotificationStore interface {
	getNotifications.NotificationsGetter
	unreadCount.UnreadCounter
	markRead.NotificationMarker
	markAllRead.AllMarker
}

type Deps struct {
	Auth          AuthService
	Tokens        auth.TokenParser
	Users         auth.UserProvider
	Events        EventService
	Bookings      BookingService
	Analytics     AnalyticsService
	Notifications NotificationStore
	Webhooks      stripeWebhook.WebhookParser
	DB            dbHealth.Pinger

	// Limiter is optional, rate limiting is off without it.
	Limiter *ratelimit.Limiter

	// ExposeErrors adds the underlying error to 5xx responses.
	ExposeErrors bool
}

func New(log *slog.Logger, d Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwmetrics.New)

	if d.ExposeErrors {
		router.Use(response.ExposeDetails)
	}

	router.Handle("/metrics", promhttp.Handler())

	authenticate := auth.New(log, d.Tokens, d.Users)
	organizer := auth.RequireUserType(models.UserTypeOrganizer)
	attendee := auth.RequireUserType(models.UserTypeAttendee)

	limit := func(scope string) func(http.Handler) http.Handler {
		if d.Limiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return d.Limiter.Middleware(scope)
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(limit("register")).Post("/register", register.New(log, d.Auth))
			r.With(limit("login")).Post("/login", login.New(log, d.Auth))

			r.Group(func(r chi.Router) {
				r.Use(authenticate)

				r.Get("/me", me.New())
				r.Put("/profile", updateProfile.New(log, d.Auth))
				r.Put("/change-password", changePassword.New(log, d.Auth))
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", getAllEvents.New(log, d.Events))
			r.With(authenticate, organizer).Get("/my-events", getMyEvents.New(log, d.Events))
			r.With(authenticate, organizer).Get("/organizer/my-events", getMyEvents.New(log, d.Events))
			r.Get("/{id}", getEventInfo.New(log, d.Events))

			r.Group(func(r chi.Router) {
				r.Use(authenticate, organizer)

				r.Post("/", createEvent.New(log, d.Events))
				r.Put("/{id}", updateEvent.New(log, d.Events))
				r.Delete("/{id}", deleteEvent.New(log, d.Events))
			})
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/event/{eventId}", getEventTickets.New(log, d.Events))

			r.Group(func(r chi.Router) {
				r.Use(authenticate, organizer)

				r.Post("/", createTicket.New(log, d.Events))
				r.Put("/{id}", updateTicket.New(log, d.Events))
				r.Delete("/{id}", deleteTicket.New(log, d.Events))
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			// Stripe signs the payload, there is no user token.
			r.Post("/webhook", stripeWebhook.New(log, d.Webhooks, d.Bookings))

			r.Group(func(r chi.Router) {
				r.Use(authenticate, attendee)

				r.With(limit("booking")).Post("/", createBooking.New(log, d.Bookings))
				r.Post("/{id}/confirm", confirmBooking.New(log, d.Bookings))
				r.Get("/my-bookings", getMyBookings.New(log, d.Bookings))
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticate, organizer)

				r.Get("/event/{eventId}/attendees", getAttendees.New(log, d.Bookings))
				r.Put("/{id}/check-in", checkIn.New(log, d.Bookings))
				// Paths used by the existing web client.
				r.Put("/checkin/{id}", checkIn.New(log, d.Bookings))
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(authenticate, organizer)

			r.Get("/dashboard", dashboard.New(log, d.Analytics))
			r.Get("/events/{id}", eventAnalytics.New(log, d.Analytics))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/", getNotifications.New(log, d.Notifications))
			r.Get("/unread-count", unreadCount.New(log, d.Notifications))
			r.Put("/read-all", markAllRead.New(log, d.Notifications))
			r.Put("/{id}/read", markRead.New(log, d.Notifications))
		})

		r.Get("/health", health.New())
		r.Get("/health/db", dbHealth.New(log, d.DB))
	})

	return router
}
