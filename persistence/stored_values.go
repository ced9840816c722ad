package persistence

import (
	"context"
	"errors"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

var (
	SaveValueFunc = SaveValue
	LoadValueFunc = LoadValue
)

// StoredValue is a key-value row for small configuration documents.
type StoredValue struct {
	Key   string `json:"key" gorm:"primary_key;size:128"`
	Value string `json:"value" sql:"type:TEXT"`

	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (v *StoredValue) TableName() string {
	return "stored_values"
}

func SaveValue(ctx context.Context, key, value string) error {
	if ActiveDataSourceManager == nil {
		return nil
	}
	db := ActiveDataSourceManager.GormDB(ctx)
	record := StoredValue{Key: key, Value: value, UpdateTime: types.CurrentTimestamp()}
	return db.Save(&record).Error
}

// LoadValue returns the stored string and whether it was present.
func LoadValue(ctx context.Context, key string) (string, bool, error) {
	if ActiveDataSourceManager == nil {
		return "", false, nil
	}
	db := ActiveDataSourceManager.GormDB(ctx)
	record := StoredValue{}
	if err := db.Where(&StoredValue{Key: key}).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return record.Value, true, nil
}
