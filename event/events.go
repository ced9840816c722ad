package event

import (
	"changeflow/common"
	"changeflow/persistence"
	"context"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

var (
	eventIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	EmitFunc = Emit

	// InvokeHandlersFunc, when set, receives every emitted record after it
	// has been persisted.
	InvokeHandlersFunc func(record *EventRecord)
)

func NewEventRecord(category EventCategory, sourceType string, sourceId int64, sourceDesc string) *EventRecord {
	return &EventRecord{
		ID: common.NextId(eventIdWorker),
		Event: Event{
			SourceId: sourceId, SourceType: sourceType, SourceDesc: sourceDesc,
			EventCategory: category,
		},
		Timestamp: types.CurrentTimestamp(),
	}
}

// Emit persists the record fire-and-forget: a persistence failure is logged
// and never fails the mutation that produced the event.
func Emit(record *EventRecord) {
	if record == nil {
		return
	}
	if persistence.ActiveDataSourceManager != nil {
		db := persistence.ActiveDataSourceManager.GormDB(context.Background())
		if err := EventPersistCreateFunc(record, db); err != nil {
			common.Log.Warnf("failed to persist event %v of %s %d: %v",
				record.EventCategory, record.SourceType, record.SourceId, err)
		}
	}
	if InvokeHandlersFunc != nil {
		InvokeHandlersFunc(record)
	}
}
