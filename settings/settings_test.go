package settings_test

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"changeflow/domain/order"
	"changeflow/persistence"
	"changeflow/settings"
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func settingsTestSetup() func() {
	origStore := order.ActiveStore
	origLoad := persistence.LoadValueFunc
	origSave := persistence.SaveValueFunc
	order.ActiveStore = order.NewStore()
	return func() {
		order.ActiveStore = origStore
		persistence.LoadValueFunc = origLoad
		persistence.SaveValueFunc = origSave
	}
}

func TestLoadAppSettings(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should fall back to defaults when nothing is stored", func(t *testing.T) {
		defer settingsTestSetup()()
		persistence.LoadValueFunc = func(ctx context.Context, key string) (string, bool, error) {
			Expect(key).To(Equal(settings.SettingsStorageKey))
			return "", false, nil
		}
		Expect(settings.LoadAppSettings(context.Background())).To(Equal(domain.DefaultAppSettings()))
	})

	t.Run("should fall back to defaults on malformed content", func(t *testing.T) {
		defer settingsTestSetup()()
		persistence.LoadValueFunc = func(ctx context.Context, key string) (string, bool, error) {
			return "{not json", true, nil
		}
		Expect(settings.LoadAppSettings(context.Background())).To(Equal(domain.DefaultAppSettings()))
	})

	t.Run("should fall back to defaults on a load failure", func(t *testing.T) {
		defer settingsTestSetup()()
		persistence.LoadValueFunc = func(ctx context.Context, key string) (string, bool, error) {
			return "", false, errors.New("connection refused")
		}
		Expect(settings.LoadAppSettings(context.Background())).To(Equal(domain.DefaultAppSettings()))
	})

	t.Run("should load the stored document", func(t *testing.T) {
		defer settingsTestSetup()()
		persistence.LoadValueFunc = func(ctx context.Context, key string) (string, bool, error) {
			return `{"projectName":"Gas Main Replacement","projectLocation":"Springfield",
				"projectManager":"Pat Doyle","approverConfig":{"Manager of Gas Engineering":"Alice Green"}}`, true, nil
		}
		loaded := settings.LoadAppSettings(context.Background())
		Expect(loaded.ProjectName).To(Equal("Gas Main Replacement"))
		Expect(loaded.ApproverConfig[domain.RoleManagerGasEngineering]).To(Equal("Alice Green"))
	})
}

func TestSaveAppSettings(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should persist first, then install into the store", func(t *testing.T) {
		defer settingsTestSetup()()
		persisted := ""
		persistence.SaveValueFunc = func(ctx context.Context, key, value string) error {
			Expect(key).To(Equal(settings.SettingsStorageKey))
			persisted = value
			return nil
		}

		s := domain.DefaultAppSettings()
		s.ProjectName = "Gas Main Replacement"
		saved, err := settings.SaveAppSettings(context.Background(), s)
		Expect(err).To(BeNil())
		Expect(saved.ProjectName).To(Equal("Gas Main Replacement"))
		Expect(persisted).To(ContainSubstring("Gas Main Replacement"))
		Expect(order.ActiveStore.Settings().ProjectName).To(Equal("Gas Main Replacement"))
	})

	t.Run("should leave the store untouched when persistence fails", func(t *testing.T) {
		defer settingsTestSetup()()
		persistence.SaveValueFunc = func(ctx context.Context, key, value string) error {
			return errors.New("disk full")
		}

		s := domain.DefaultAppSettings()
		s.ProjectName = "Gas Main Replacement"
		_, err := settings.SaveAppSettings(context.Background(), s)
		var ioErr *bizerror.ErrExternalIO
		Expect(errors.As(err, &ioErr)).To(BeTrue())
		Expect(order.ActiveStore.Settings().ProjectName).To(Equal(""))
	})
}
