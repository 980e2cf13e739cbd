package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cricbid/auction-engine/internal/catalog"
)

func TestNeedsReport_EmptyRoster(t *testing.T) {
	e := testEngine(t)

	report := e.NeedsReport(nil)

	assert.Zero(t, report.BowlingCapable)
	assert.Equal(t, 6, report.BowlersNeeded)
	assert.True(t, report.NeedsBowling)
	assert.True(t, report.NeedsRole(catalog.RoleBatsman))
	assert.True(t, report.NeedsRole(catalog.RoleBowler))
	assert.True(t, report.NeedsRole(catalog.RoleAllRounder))
}

func TestNeedsReport_SatisfiedRoster(t *testing.T) {
	e := testEngine(t)

	report := e.NeedsReport(settledRoster())

	assert.Equal(t, 6, report.BowlingCapable)
	assert.Zero(t, report.BowlersNeeded)
	assert.False(t, report.NeedsBowling)
	assert.False(t, report.NeedsRole(catalog.RoleBatsman))
	assert.False(t, report.NeedsRole(catalog.RoleBowler))
	assert.False(t, report.NeedsRole(catalog.RoleAllRounder))
	assert.Equal(t, 3, report.RoleCounts[catalog.RoleBatsman])
	assert.Equal(t, 4, report.RoleCounts[catalog.RoleBowler])
	assert.Equal(t, 2, report.RoleCounts[catalog.RoleAllRounder])
}

func TestNeedsReport_PartialRoster(t *testing.T) {
	e := testEngine(t)

	roster := []catalog.Player{
		testPlayer(101, "Bat A", 7, 0, 5),
		testPlayer(102, "Bat B", 6, 0, 5),
		testPlayer(103, "Bat C", 5, 0, 5),
		testPlayer(104, "Bowl A", 2, 7, 4),
	}
	report := e.NeedsReport(roster)

	assert.Equal(t, 1, report.BowlingCapable)
	assert.Equal(t, 5, report.BowlersNeeded)
	assert.False(t, report.NeedsRole(catalog.RoleBatsman), "three batsmen meet the target")
	assert.True(t, report.NeedsRole(catalog.RoleBowler))
	assert.True(t, report.NeedsRole(catalog.RoleAllRounder))
}
