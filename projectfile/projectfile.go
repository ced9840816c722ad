package projectfile

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"changeflow/domain/order"
	"changeflow/event"
	"encoding/json"
	"errors"
)

var (
	ExportProjectFileFunc = ExportProjectFile
	ImportProjectFileFunc = ImportProjectFile
)

// ProjectFile is the authoritative on-disk shape of a whole project:
// settings plus the full change-order collection.
type ProjectFile struct {
	Settings     domain.AppSettings   `json:"settings"`
	ChangeOrders []domain.ChangeOrder `json:"changeOrders"`
}

func ExportProjectFile() *ProjectFile {
	return &ProjectFile{
		Settings:     order.ActiveStore.Settings(),
		ChangeOrders: order.ActiveStore.Orders(),
	}
}

// ImportProjectFile parses and structurally validates the given content,
// then swaps the whole collection and settings. Validation is structural
// only: settings must be an object carrying an approverConfig object and
// changeOrders must be a sequence; individual change-order field invariants
// are not checked. On any failure the previous state is untouched.
func ImportProjectFile(content []byte) (*ProjectFile, error) {
	shape := struct {
		Settings     json.RawMessage `json:"settings"`
		ChangeOrders json.RawMessage `json:"changeOrders"`
	}{}
	if err := json.Unmarshal(content, &shape); err != nil {
		return nil, &bizerror.ErrImportFormat{Cause: err}
	}
	if len(shape.Settings) == 0 {
		return nil, &bizerror.ErrImportFormat{Cause: errors.New("settings is missing")}
	}
	settingsShape := struct {
		ApproverConfig json.RawMessage `json:"approverConfig"`
	}{}
	if err := json.Unmarshal(shape.Settings, &settingsShape); err != nil {
		return nil, &bizerror.ErrImportFormat{Cause: errors.New("settings is not an object")}
	}
	approverConfig := map[string]string{}
	if len(settingsShape.ApproverConfig) == 0 ||
		json.Unmarshal(settingsShape.ApproverConfig, &approverConfig) != nil {
		return nil, &bizerror.ErrImportFormat{Cause: errors.New("settings.approverConfig is not an object")}
	}
	orderShapes := []json.RawMessage{}
	if len(shape.ChangeOrders) == 0 || json.Unmarshal(shape.ChangeOrders, &orderShapes) != nil {
		return nil, &bizerror.ErrImportFormat{Cause: errors.New("changeOrders is not a sequence")}
	}

	document := ProjectFile{}
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, &bizerror.ErrImportFormat{Cause: err}
	}
	if document.ChangeOrders == nil {
		document.ChangeOrders = []domain.ChangeOrder{}
	}

	order.ActiveStore.ReplaceAll(document.ChangeOrders, document.Settings)
	event.EmitFunc(event.NewEventRecord(event.EventCategoryReplaced, "project_file", 0, document.Settings.ProjectName))
	return &document, nil
}
