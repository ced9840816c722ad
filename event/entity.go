package event

import (
	"github.com/fundwit/go-commons/types"
)

const (
	EventCategoryCreated    = "CREATED"
	EventCategoryUpdated    = "UPDATED"
	EventCategoryDeleted    = "DELETED"
	EventCategoryRenumbered = "RENUMBERED"
	EventCategoryReplaced   = "REPLACED"
)

type EventCategory string

type Event struct {
	SourceId   int64  `json:"sourceId"`
	SourceType string `json:"sourceType"`
	SourceDesc string `json:"sourceDesc"`

	EventCategory EventCategory `json:"eventCategory"`
}

type EventRecord struct {
	ID types.ID `json:"id"`

	Event

	Timestamp types.Timestamp `json:"timestamp" sql:"type:DATETIME(6)"`
}

func (r *EventRecord) TableName() string {
	return "events"
}
