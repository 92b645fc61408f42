// Package plan holds the plan aggregate: the fully loaded plan graph, the
// repository contracts for every owned table, and the versioning policy used
// by the duplication workflow.
package plan

import (
	"myra/internal/infrastructure/persistence/models"
)

// Graph is a plan with its entire owned subtree loaded. Each level is
// fetched by an independent query scoped to its parent; there is no
// recursive SQL.
type Graph struct {
	Plan                     models.PlanModel
	Pastures                 []PastureNode
	Schedules                []ScheduleNode
	MinisterIssues           []MinisterIssueNode
	AdditionalRequirements   []models.AdditionalRequirementModel
	ManagementConsiderations []models.ManagementConsiderationModel
}

// PastureNode is a pasture with its plant communities.
type PastureNode struct {
	Pasture     models.PastureModel
	Communities []CommunityNode
}

// CommunityNode is a plant community with its owned children.
type CommunityNode struct {
	Community       models.PlantCommunityModel
	IndicatorPlants []models.IndicatorPlantModel
	MonitoringAreas []AreaNode
	Actions         []models.PlantCommunityActionModel
}

// AreaNode is a monitoring area with its purpose links.
type AreaNode struct {
	Area     models.MonitoringAreaModel
	Purposes []models.MonitoringAreaPurposeModel
}

// ScheduleNode is a grazing schedule with its entries. Entries reference
// pastures of the same plan by internal id.
type ScheduleNode struct {
	Schedule models.GrazingScheduleModel
	Entries  []models.GrazingScheduleEntryModel
}

// MinisterIssueNode is a minister issue with its actions and the internal
// ids of the pastures it affects.
type MinisterIssueNode struct {
	Issue      models.MinisterIssueModel
	Actions    []models.MinisterIssueActionModel
	PastureIDs []uint
}

// Counts tallies the graph's rows per table. Used by tests and by the
// duplication workflow's consistency logging.
type Counts struct {
	Pastures                 int
	Communities              int
	IndicatorPlants          int
	MonitoringAreas          int
	Purposes                 int
	CommunityActions         int
	Schedules                int
	ScheduleEntries          int
	MinisterIssues           int
	MinisterIssueActions     int
	MinisterIssuePastures    int
	AdditionalRequirements   int
	ManagementConsiderations int
}

// Count walks the graph and tallies every row.
func (g *Graph) Count() Counts {
	var c Counts
	for _, p := range g.Pastures {
		c.Pastures++
		for _, pc := range p.Communities {
			c.Communities++
			c.IndicatorPlants += len(pc.IndicatorPlants)
			c.CommunityActions += len(pc.Actions)
			for _, a := range pc.MonitoringAreas {
				c.MonitoringAreas++
				c.Purposes += len(a.Purposes)
			}
		}
	}
	for _, s := range g.Schedules {
		c.Schedules++
		c.ScheduleEntries += len(s.Entries)
	}
	for _, i := range g.MinisterIssues {
		c.MinisterIssues++
		c.MinisterIssueActions += len(i.Actions)
		c.MinisterIssuePastures += len(i.PastureIDs)
	}
	c.AdditionalRequirements = len(g.AdditionalRequirements)
	c.ManagementConsiderations = len(g.ManagementConsiderations)
	return c
}
