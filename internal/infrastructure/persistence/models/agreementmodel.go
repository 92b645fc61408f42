package models

import "time"

// AgreementModel is a range agreement (forest file). Its id is the natural
// agreement number, e.g. "RAN075974".
type AgreementModel struct {
	ID              string `gorm:"primaryKey;size:9"`
	ZoneID          uint   `gorm:"not null;index"`
	AgreementTypeID *uint
	AgreementStart  *time.Time
	AgreementEnd    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AgreementModel) TableName() string {
	return "agreement"
}

// ClientModel is an agreement holder registered with the province.
type ClientModel struct {
	ID        string `gorm:"primaryKey;size:16"`
	Name      string `gorm:"size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClientModel) TableName() string {
	return "client"
}

// ClientAgreementModel links a client to an agreement they hold.
type ClientAgreementModel struct {
	ID          uint   `gorm:"primaryKey"`
	AgreementID string `gorm:"size:9;not null;index"`
	ClientID    string `gorm:"size:16;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ClientAgreementModel) TableName() string {
	return "client_agreement"
}

// UserClientLinkModel links a user account to the client it acts for.
type UserClientLinkModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	ClientID  string `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserClientLinkModel) TableName() string {
	return "user_client_link"
}
