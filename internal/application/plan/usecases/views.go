package usecases

import (
	"time"

	"myra/internal/domain/plan"
	"myra/internal/infrastructure/persistence/models"
)

// View types are the wire shapes the API returns. Every `id` field carries
// the entity's canonical id; internal storage keys never leave the
// application layer.

type PastureView struct {
	ID           uint     `json:"id"`
	PlanID       uint     `json:"planId"`
	Name         string   `json:"name"`
	AllowableAUM *int     `json:"allowableAum"`
	GraceDays    *int     `json:"graceDays"`
	PldPercent   *float64 `json:"pldPercent"`
	Notes        string   `json:"notes"`
}

func newPastureView(m *models.PastureModel, planCanonicalID uint) *PastureView {
	return &PastureView{
		ID:           m.CanonicalID,
		PlanID:       planCanonicalID,
		Name:         m.Name,
		AllowableAUM: m.AllowableAUM,
		GraceDays:    m.GraceDays,
		PldPercent:   m.PldPercent,
		Notes:        m.Notes,
	}
}

type PlantCommunityView struct {
	ID              uint   `json:"id"`
	PastureID       uint   `json:"pastureId"`
	CommunityTypeID uint   `json:"communityTypeId"`
	ElevationID     *uint  `json:"elevationId"`
	PurposeOfAction string `json:"purposeOfAction"`
	Name            string `json:"name"`
	Aspect          string `json:"aspect"`
	URL             string `json:"url"`
	Notes           string `json:"notes"`
	Approved        bool   `json:"approved"`
}

func newPlantCommunityView(m *models.PlantCommunityModel, pastureCanonicalID uint) *PlantCommunityView {
	return &PlantCommunityView{
		ID:              m.CanonicalID,
		PastureID:       pastureCanonicalID,
		CommunityTypeID: m.CommunityTypeID,
		ElevationID:     m.ElevationID,
		PurposeOfAction: m.PurposeOfAction,
		Name:            m.Name,
		Aspect:          m.Aspect,
		URL:             m.URL,
		Notes:           m.Notes,
		Approved:        m.Approved,
	}
}

type IndicatorPlantView struct {
	ID             uint     `json:"id"`
	PlantSpeciesID *uint    `json:"plantSpeciesId"`
	Criteria       string   `json:"criteria"`
	Value          *float64 `json:"value"`
	Name           string   `json:"name"`
}

func newIndicatorPlantView(m *models.IndicatorPlantModel) *IndicatorPlantView {
	return &IndicatorPlantView{
		ID:             m.CanonicalID,
		PlantSpeciesID: m.PlantSpeciesID,
		Criteria:       m.Criteria,
		Value:          m.Value,
		Name:           m.Name,
	}
}

type PlantCommunityActionView struct {
	ID                uint   `json:"id"`
	ActionTypeID      uint   `json:"actionTypeId"`
	Name              string `json:"name"`
	Details           string `json:"details"`
	NoGrazeStartDay   *int   `json:"noGrazeStartDay"`
	NoGrazeStartMonth *int   `json:"noGrazeStartMonth"`
	NoGrazeEndDay     *int   `json:"noGrazeEndDay"`
	NoGrazeEndMonth   *int   `json:"noGrazeEndMonth"`
}

func newPlantCommunityActionView(m *models.PlantCommunityActionModel) *PlantCommunityActionView {
	return &PlantCommunityActionView{
		ID:                m.CanonicalID,
		ActionTypeID:      m.ActionTypeID,
		Name:              m.Name,
		Details:           m.Details,
		NoGrazeStartDay:   m.NoGrazeStartDay,
		NoGrazeStartMonth: m.NoGrazeStartMonth,
		NoGrazeEndDay:     m.NoGrazeEndDay,
		NoGrazeEndMonth:   m.NoGrazeEndMonth,
	}
}

type MonitoringAreaView struct {
	ID                uint                        `json:"id"`
	Name              string                      `json:"name"`
	Latitude          *float64                    `json:"latitude"`
	Longitude         *float64                    `json:"longitude"`
	RangelandHealthID *uint                       `json:"rangelandHealthId"`
	TransectAzimuth   *int                        `json:"transectAzimuth"`
	Location          string                      `json:"location"`
	OtherPurpose      string                      `json:"otherPurpose"`
	Purposes          []MonitoringAreaPurposeView `json:"purposes"`
}

type MonitoringAreaPurposeView struct {
	ID            uint `json:"id"`
	PurposeTypeID uint `json:"purposeTypeId"`
}

func newMonitoringAreaView(m *models.MonitoringAreaModel, purposes []models.MonitoringAreaPurposeModel) *MonitoringAreaView {
	view := &MonitoringAreaView{
		ID:                m.CanonicalID,
		Name:              m.Name,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		RangelandHealthID: m.RangelandHealthID,
		TransectAzimuth:   m.TransectAzimuth,
		Location:          m.Location,
		OtherPurpose:      m.OtherPurpose,
		Purposes:          []MonitoringAreaPurposeView{},
	}
	for _, p := range purposes {
		view.Purposes = append(view.Purposes, MonitoringAreaPurposeView{
			ID:            p.CanonicalID,
			PurposeTypeID: p.PurposeTypeID,
		})
	}
	return view
}

type GrazingScheduleView struct {
	ID        uint                       `json:"id"`
	PlanID    uint                       `json:"planId"`
	Year      int                        `json:"year"`
	Narrative string                     `json:"narrative"`
	Entries   []GrazingScheduleEntryView `json:"grazingScheduleEntries"`
}

type GrazingScheduleEntryView struct {
	ID              uint       `json:"id"`
	PastureID       uint       `json:"pastureId"`
	LivestockTypeID *uint      `json:"livestockTypeId"`
	LivestockCount  int        `json:"livestockCount"`
	DateIn          *time.Time `json:"dateIn"`
	DateOut         *time.Time `json:"dateOut"`
	GraceDays       *int       `json:"graceDays"`
}

// newGrazingScheduleView externalizes a schedule. pastureCanonical maps
// internal pasture ids to their canonical ids so entries reference pastures
// the way the rest of the API does.
func newGrazingScheduleView(m *models.GrazingScheduleModel, entries []models.GrazingScheduleEntryModel, planCanonicalID uint, pastureCanonical map[uint]uint) *GrazingScheduleView {
	view := &GrazingScheduleView{
		ID:        m.CanonicalID,
		PlanID:    planCanonicalID,
		Year:      m.Year,
		Narrative: m.Narrative,
		Entries:   []GrazingScheduleEntryView{},
	}
	for _, e := range entries {
		view.Entries = append(view.Entries, GrazingScheduleEntryView{
			ID:              e.CanonicalID,
			PastureID:       pastureCanonical[e.PastureID],
			LivestockTypeID: e.LivestockTypeID,
			LivestockCount:  e.LivestockCount,
			DateIn:          e.DateIn,
			DateOut:         e.DateOut,
			GraceDays:       e.GraceDays,
		})
	}
	return view
}

type MinisterIssueView struct {
	ID          uint                      `json:"id"`
	PlanID      uint                      `json:"planId"`
	IssueTypeID uint                      `json:"issueTypeId"`
	Detail      string                    `json:"detail"`
	Objective   string                    `json:"objective"`
	Identified  bool                      `json:"identified"`
	Actions     []MinisterIssueActionView `json:"ministerIssueActions"`
	Pastures    []uint                    `json:"pastures"`
}

type MinisterIssueActionView struct {
	ID                uint   `json:"id"`
	ActionTypeID      uint   `json:"actionTypeId"`
	Detail            string `json:"detail"`
	Other             string `json:"other"`
	NoGrazeStartDay   *int   `json:"noGrazeStartDay"`
	NoGrazeStartMonth *int   `json:"noGrazeStartMonth"`
	NoGrazeEndDay     *int   `json:"noGrazeEndDay"`
	NoGrazeEndMonth   *int   `json:"noGrazeEndMonth"`
}

func newMinisterIssueView(m *models.MinisterIssueModel, actions []models.MinisterIssueActionModel, pastureIDs []uint, planCanonicalID uint, pastureCanonical map[uint]uint) *MinisterIssueView {
	view := &MinisterIssueView{
		ID:          m.CanonicalID,
		PlanID:      planCanonicalID,
		IssueTypeID: m.IssueTypeID,
		Detail:      m.Detail,
		Objective:   m.Objective,
		Identified:  m.Identified,
		Actions:     []MinisterIssueActionView{},
		Pastures:    []uint{},
	}
	for _, a := range actions {
		view.Actions = append(view.Actions, newMinisterIssueActionView(&a))
	}
	for _, id := range pastureIDs {
		view.Pastures = append(view.Pastures, pastureCanonical[id])
	}
	return view
}

func newMinisterIssueActionView(m *models.MinisterIssueActionModel) MinisterIssueActionView {
	return MinisterIssueActionView{
		ID:                m.CanonicalID,
		ActionTypeID:      m.ActionTypeID,
		Detail:            m.Detail,
		Other:             m.Other,
		NoGrazeStartDay:   m.NoGrazeStartDay,
		NoGrazeStartMonth: m.NoGrazeStartMonth,
		NoGrazeEndDay:     m.NoGrazeEndDay,
		NoGrazeEndMonth:   m.NoGrazeEndMonth,
	}
}

type AdditionalRequirementView struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"categoryId"`
	Detail     string `json:"detail"`
	URL        string `json:"url"`
}

func newAdditionalRequirementView(m *models.AdditionalRequirementModel) *AdditionalRequirementView {
	return &AdditionalRequirementView{
		ID:         m.CanonicalID,
		CategoryID: m.CategoryID,
		Detail:     m.Detail,
		URL:        m.URL,
	}
}

type ManagementConsiderationView struct {
	ID                  uint   `json:"id"`
	ConsiderationTypeID *uint  `json:"considerationTypeId"`
	Detail              string `json:"detail"`
	URL                 string `json:"url"`
}

func newManagementConsiderationView(m *models.ManagementConsiderationModel) *ManagementConsiderationView {
	return &ManagementConsiderationView{
		ID:                  m.CanonicalID,
		ConsiderationTypeID: m.ConsiderationTypeID,
		Detail:              m.Detail,
		URL:                 m.URL,
	}
}

// PlantCommunityDetailView is a plant community with its owned children,
// returned by plan detail.
type PlantCommunityDetailView struct {
	PlantCommunityView
	IndicatorPlants []IndicatorPlantView       `json:"indicatorPlants"`
	MonitoringAreas []MonitoringAreaView       `json:"monitoringAreas"`
	Actions         []PlantCommunityActionView `json:"plantCommunityActions"`
}

// PastureDetailView is a pasture with its plant communities.
type PastureDetailView struct {
	PastureView
	PlantCommunities []PlantCommunityDetailView `json:"plantCommunities"`
}

// PlanView is the full plan detail payload.
type PlanView struct {
	ID                       uint                          `json:"id"`
	Version                  int                           `json:"version"`
	AgreementID              string                        `json:"agreementId"`
	RangeName                string                        `json:"rangeName"`
	AltBusinessName          string                        `json:"altBusinessName"`
	PlanStartDate            *time.Time                    `json:"planStartDate"`
	PlanEndDate              *time.Time                    `json:"planEndDate"`
	Notes                    string                        `json:"notes"`
	StatusID                 uint                          `json:"statusId"`
	ExtensionID              *uint                         `json:"extensionId"`
	CreatorID                uint                          `json:"creatorId"`
	AmendmentTypeID          *uint                         `json:"amendmentTypeId"`
	Uploaded                 bool                          `json:"uploaded"`
	StaffInitiated           bool                          `json:"staffInitiated"`
	EffectiveAt              *time.Time                    `json:"effectiveAt"`
	SubmittedAt              *time.Time                    `json:"submittedAt"`
	Pastures                 []PastureDetailView           `json:"pastures"`
	GrazingSchedules         []GrazingScheduleView         `json:"grazingSchedules"`
	MinisterIssues           []MinisterIssueView           `json:"ministerIssues"`
	AdditionalRequirements   []AdditionalRequirementView   `json:"additionalRequirements"`
	ManagementConsiderations []ManagementConsiderationView `json:"managementConsiderations"`
}

// newPlanView externalizes a loaded plan graph.
func newPlanView(g *plan.Graph) *PlanView {
	planCanonical := g.Plan.CanonicalID

	pastureCanonical := make(map[uint]uint, len(g.Pastures))
	for _, node := range g.Pastures {
		pastureCanonical[node.Pasture.ID] = node.Pasture.CanonicalID
	}

	view := &PlanView{
		ID:                       planCanonical,
		Version:                  g.Plan.Version,
		AgreementID:              g.Plan.AgreementID,
		RangeName:                g.Plan.RangeName,
		AltBusinessName:          g.Plan.AltBusinessName,
		PlanStartDate:            g.Plan.PlanStartDate,
		PlanEndDate:              g.Plan.PlanEndDate,
		Notes:                    g.Plan.Notes,
		StatusID:                 g.Plan.StatusID,
		ExtensionID:              g.Plan.ExtensionID,
		CreatorID:                g.Plan.CreatorID,
		AmendmentTypeID:          g.Plan.AmendmentTypeID,
		Uploaded:                 g.Plan.Uploaded,
		StaffInitiated:           g.Plan.StaffInitiated,
		EffectiveAt:              g.Plan.EffectiveAt,
		SubmittedAt:              g.Plan.SubmittedAt,
		Pastures:                 []PastureDetailView{},
		GrazingSchedules:         []GrazingScheduleView{},
		MinisterIssues:           []MinisterIssueView{},
		AdditionalRequirements:   []AdditionalRequirementView{},
		ManagementConsiderations: []ManagementConsiderationView{},
	}

	for _, node := range g.Pastures {
		pView := PastureDetailView{
			PastureView:      *newPastureView(&node.Pasture, planCanonical),
			PlantCommunities: []PlantCommunityDetailView{},
		}
		for _, cNode := range node.Communities {
			cView := PlantCommunityDetailView{
				PlantCommunityView: *newPlantCommunityView(&cNode.Community, node.Pasture.CanonicalID),
				IndicatorPlants:    []IndicatorPlantView{},
				MonitoringAreas:    []MonitoringAreaView{},
				Actions:            []PlantCommunityActionView{},
			}
			for _, ip := range cNode.IndicatorPlants {
				cView.IndicatorPlants = append(cView.IndicatorPlants, *newIndicatorPlantView(&ip))
			}
			for _, aNode := range cNode.MonitoringAreas {
				cView.MonitoringAreas = append(cView.MonitoringAreas, *newMonitoringAreaView(&aNode.Area, aNode.Purposes))
			}
			for _, action := range cNode.Actions {
				cView.Actions = append(cView.Actions, *newPlantCommunityActionView(&action))
			}
			pView.PlantCommunities = append(pView.PlantCommunities, cView)
		}
		view.Pastures = append(view.Pastures, pView)
	}

	for _, sNode := range g.Schedules {
		view.GrazingSchedules = append(view.GrazingSchedules,
			*newGrazingScheduleView(&sNode.Schedule, sNode.Entries, planCanonical, pastureCanonical))
	}
	for _, iNode := range g.MinisterIssues {
		view.MinisterIssues = append(view.MinisterIssues,
			*newMinisterIssueView(&iNode.Issue, iNode.Actions, iNode.PastureIDs, planCanonical, pastureCanonical))
	}
	for _, req := range g.AdditionalRequirements {
		view.AdditionalRequirements = append(view.AdditionalRequirements, *newAdditionalRequirementView(&req))
	}
	for _, mc := range g.ManagementConsiderations {
		view.ManagementConsiderations = append(view.ManagementConsiderations, *newManagementConsiderationView(&mc))
	}

	return view
}
