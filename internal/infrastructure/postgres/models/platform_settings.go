package models

import "time"

// PlatformSettingsModel is a single-row table; ID is always 1.
type PlatformSettingsModel struct {
	ID             uint `gorm:"primaryKey"`
	ZeroFeeActive  bool `gorm:"not null;default:false"`
	ZeroFeeEndDate *time.Time
	UpdatedBy      string
	UpdatedAt      time.Time
}

func (PlatformSettingsModel) TableName() string {
	return "platform_settings"
}
