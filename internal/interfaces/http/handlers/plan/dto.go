// Package plan exposes the plan tree over HTTP. Every id that appears in a
// URL or a response body is a canonical id.
package plan

import "time"

type CreatePlanRequest struct {
	AgreementID     string     `json:"agreementId" binding:"required"`
	RangeName       string     `json:"rangeName"`
	AltBusinessName string     `json:"altBusinessName"`
	PlanStartDate   *time.Time `json:"planStartDate"`
	PlanEndDate     *time.Time `json:"planEndDate"`
	Notes           string     `json:"notes"`
	StatusID        uint       `json:"statusId" binding:"required"`
	ExtensionID     *uint      `json:"extensionId"`
	AmendmentTypeID *uint      `json:"amendmentTypeId"`
	Uploaded        bool       `json:"uploaded"`
	StaffInitiated  bool       `json:"staffInitiated"`
}

type UpdatePlanRequest struct {
	RangeName       string     `json:"rangeName"`
	AltBusinessName string     `json:"altBusinessName"`
	PlanStartDate   *time.Time `json:"planStartDate"`
	PlanEndDate     *time.Time `json:"planEndDate"`
	Notes           string     `json:"notes"`
	ExtensionID     *uint      `json:"extensionId"`
	AmendmentTypeID *uint      `json:"amendmentTypeId"`
	Uploaded        bool       `json:"uploaded"`
}

type UpdatePlanStatusRequest struct {
	StatusID uint `json:"statusId" binding:"required"`
}

type CopyPlanRequest struct {
	AgreementID string `json:"agreementId"`
}

type PastureRequest struct {
	Name         string   `json:"name" binding:"required"`
	AllowableAUM *int     `json:"allowableAum"`
	GraceDays    *int     `json:"graceDays"`
	PldPercent   *float64 `json:"pldPercent"`
	Notes        string   `json:"notes"`
}

type PlantCommunityRequest struct {
	CommunityTypeID uint   `json:"communityTypeId" binding:"required"`
	ElevationID     *uint  `json:"elevationId"`
	PurposeOfAction string `json:"purposeOfAction" binding:"required"`
	Name            string `json:"name"`
	Aspect          string `json:"aspect"`
	URL             string `json:"url"`
	Notes           string `json:"notes"`
	Approved        bool   `json:"approved"`
}

type IndicatorPlantRequest struct {
	PlantSpeciesID *uint    `json:"plantSpeciesId"`
	Criteria       string   `json:"criteria" binding:"required"`
	Value          *float64 `json:"value"`
	Name           string   `json:"name"`
}

type PlantCommunityActionRequest struct {
	ActionTypeID      uint   `json:"actionTypeId" binding:"required"`
	Name              string `json:"name"`
	Details           string `json:"details"`
	NoGrazeStartDay   *int   `json:"noGrazeStartDay"`
	NoGrazeStartMonth *int   `json:"noGrazeStartMonth"`
	NoGrazeEndDay     *int   `json:"noGrazeEndDay"`
	NoGrazeEndMonth   *int   `json:"noGrazeEndMonth"`
}

type MonitoringAreaRequest struct {
	Name              string   `json:"name" binding:"required"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	RangelandHealthID *uint    `json:"rangelandHealthId"`
	TransectAzimuth   *int     `json:"transectAzimuth"`
	Location          string   `json:"location"`
	OtherPurpose      string   `json:"otherPurpose"`
	PurposeTypeIDs    []uint   `json:"purposeTypeIds" binding:"required"`
}

type GrazingScheduleEntryRequest struct {
	PastureID       uint       `json:"pastureId" binding:"required"`
	LivestockTypeID *uint      `json:"livestockTypeId"`
	LivestockCount  int        `json:"livestockCount"`
	DateIn          *time.Time `json:"dateIn"`
	DateOut         *time.Time `json:"dateOut"`
	GraceDays       *int       `json:"graceDays"`
}

type GrazingScheduleRequest struct {
	Year      int                           `json:"year" binding:"required"`
	Narrative string                        `json:"narrative"`
	Entries   []GrazingScheduleEntryRequest `json:"grazingScheduleEntries"`
}

type MinisterIssueRequest struct {
	IssueTypeID uint   `json:"issueTypeId" binding:"required"`
	Detail      string `json:"detail"`
	Objective   string `json:"objective"`
	Identified  bool   `json:"identified"`
	Pastures    []uint `json:"pastures"`
}

type MinisterIssueActionRequest struct {
	ActionTypeID      uint   `json:"actionTypeId" binding:"required"`
	Detail            string `json:"detail"`
	Other             string `json:"other"`
	NoGrazeStartDay   *int   `json:"noGrazeStartDay"`
	NoGrazeStartMonth *int   `json:"noGrazeStartMonth"`
	NoGrazeEndDay     *int   `json:"noGrazeEndDay"`
	NoGrazeEndMonth   *int   `json:"noGrazeEndMonth"`
}

type AdditionalRequirementRequest struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	Detail     string `json:"detail"`
	URL        string `json:"url"`
}

type ManagementConsiderationRequest struct {
	ConsiderationTypeID *uint  `json:"considerationTypeId"`
	Detail              string `json:"detail"`
	URL                 string `json:"url"`
}
