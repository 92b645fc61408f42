package models

import "time"

// MinisterIssueModel is a tracked concern raised against a plan.
type MinisterIssueModel struct {
	ID          uint   `gorm:"primaryKey"`
	CanonicalID uint   `gorm:"not null;index"`
	PlanID      uint   `gorm:"not null;index"`
	IssueTypeID uint   `gorm:"not null"`
	Detail      string `gorm:"type:text"`
	Objective   string `gorm:"type:text"`
	Identified  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MinisterIssueModel) TableName() string {
	return "minister_issue"
}

// MinisterIssueActionModel is an action taken for a minister issue.
type MinisterIssueActionModel struct {
	ID                uint   `gorm:"primaryKey"`
	CanonicalID       uint   `gorm:"not null;index"`
	MinisterIssueID   uint   `gorm:"not null;index"`
	ActionTypeID      uint   `gorm:"not null"`
	Detail            string `gorm:"type:text"`
	Other             string `gorm:"size:64"`
	NoGrazeStartDay   *int
	NoGrazeStartMonth *int
	NoGrazeEndDay     *int
	NoGrazeEndMonth   *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MinisterIssueActionModel) TableName() string {
	return "minister_issue_action"
}

// MinisterIssuePastureModel links a minister issue to an affected pasture.
// PastureID must be remapped during plan duplication.
type MinisterIssuePastureModel struct {
	ID              uint `gorm:"primaryKey"`
	MinisterIssueID uint `gorm:"not null;index"`
	PastureID       uint `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MinisterIssuePastureModel) TableName() string {
	return "minister_issue_pasture"
}
