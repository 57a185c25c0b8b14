package models

import "time"

type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationEventCancelled   NotificationType = "event_cancelled"
	NotificationEventUpdated     NotificationType = "event_updated"
	NotificationGeneral          NotificationType = "general"
)

type Notification struct {
	ID               string           `json:"id" bson:"_id"`
	UserID           string           `json:"user_id" bson:"userId"`
	Message          string           `json:"message" bson:"message"`
	Type             NotificationType `json:"type" bson:"type"`
	Read             bool             `json:"read" bson:"read"`
	RelatedEventID   string           `json:"related_event_id,omitempty" bson:"relatedEventId,omitempty"`
	RelatedBookingID string           `json:"related_booking_id,omitempty" bson:"relatedBookingId,omitempty"`
	CreatedAt        time.Time        `json:"created_at" bson:"createdAt"`
}
