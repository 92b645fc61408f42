package models

import "time"

// UserAccountModel is an authenticated user of the application. Role mirrors
// the role granted by the identity provider.
type UserAccountModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:64;uniqueIndex;not null"`
	Email       string `gorm:"size:128;index"`
	GivenName   string `gorm:"size:64"`
	FamilyName  string `gorm:"size:64"`
	Role        string `gorm:"size:32;not null"`
	Active      bool   `gorm:"not null"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserAccountModel) TableName() string {
	return "user_account"
}
