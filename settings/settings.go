package settings

import (
	"changeflow/bizerror"
	"changeflow/common"
	"changeflow/domain"
	"changeflow/domain/order"
	"changeflow/persistence"
	"context"
	"encoding/json"
)

const SettingsStorageKey = "appSettings"

var (
	LoadAppSettingsFunc = LoadAppSettings
	SaveAppSettingsFunc = SaveAppSettings
)

// Bootstrap installs the persisted settings into the active store. Called
// once at startup.
func Bootstrap(ctx context.Context) {
	order.ActiveStore.SaveSettings(LoadAppSettingsFunc(ctx))
}

// LoadAppSettings reads the persisted settings document. Anything missing or
// malformed falls back to empty defaults.
func LoadAppSettings(ctx context.Context) domain.AppSettings {
	value, found, err := persistence.LoadValueFunc(ctx, SettingsStorageKey)
	if err != nil {
		common.Log.Warnf("failed to load settings, falling back to defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	if !found {
		return domain.DefaultAppSettings()
	}

	settings := domain.DefaultAppSettings()
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		common.Log.Warnf("stored settings are malformed, falling back to defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	if settings.ApproverConfig == nil {
		settings.ApproverConfig = domain.DefaultAppSettings().ApproverConfig
	}
	return settings
}

// SaveAppSettings persists the settings wholesale, then installs them into
// the active store. The in-memory settings stay untouched when persistence
// fails.
func SaveAppSettings(ctx context.Context, settings domain.AppSettings) (*domain.AppSettings, error) {
	if settings.ApproverConfig == nil {
		settings.ApproverConfig = domain.DefaultAppSettings().ApproverConfig
	}
	content, err := json.Marshal(&settings)
	if err != nil {
		return nil, err
	}
	if err := persistence.SaveValueFunc(ctx, SettingsStorageKey, string(content)); err != nil {
		return nil, &bizerror.ErrExternalIO{Op: "persist settings", Cause: err}
	}
	order.ActiveStore.SaveSettings(settings)
	saved := order.ActiveStore.Settings()
	return &saved, nil
}
