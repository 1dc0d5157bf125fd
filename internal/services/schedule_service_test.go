package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dongseon/internal/models/plan_models"
)

func newScheduleService(geo GeoServiceInterface) ScheduleServiceInterface {
	return NewScheduleService(geo, NewCandidateFilter())
}

func draft(day int, name, category string) plan_models.DraftItem {
	return plan_models.DraftItem{Day: day, Name: name, Category: category}
}

func TestPlan_SingleDayTimeline(t *testing.T) {
	geo := &fakeGeoService{
		legs: map[string]int{
			legKeyOf("A", "B"): 20,
			legKeyOf("B", "C"): 15,
			legKeyOf("C", "D"): 25,
		},
	}
	svc := newScheduleService(geo)

	items := []plan_models.DraftItem{
		draft(1, "A", "dining"),
		draft(1, "B", "cafe"),
		draft(1, "C", "attraction"),
		draft(1, "D", "dining"),
	}

	got, err := svc.Plan(context.Background(), items, "12:00")
	require.NoError(t, err)
	require.Len(t, got, 7)

	// 12:00 +90 +20 +60 +15 +120 +25 leaves the last meal at 17:30
	first := got[0]
	assert.Equal(t, plan_models.ItemActivity, first.Type)
	assert.Equal(t, "12:00", first.Start)
	assert.Equal(t, "13:30", first.End)

	last := got[6]
	assert.Equal(t, plan_models.ItemActivity, last.Type)
	assert.Equal(t, "D", last.Name)
	assert.Equal(t, "17:30", last.Start)
	assert.Equal(t, "19:00", last.End)

	for i, item := range got {
		if i%2 == 0 {
			assert.Equal(t, plan_models.ItemActivity, item.Type, "item %d", i)
		} else {
			assert.Equal(t, plan_models.ItemMove, item.Type, "item %d", i)
		}
		if i > 0 {
			assert.Equal(t, got[i-1].End, item.Start, "item %d continuity", i)
		}
	}
}

func TestPlan_LaterDaysResetToMorning(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{}}
	svc := newScheduleService(geo)

	items := []plan_models.DraftItem{
		draft(1, "A", "attraction"),
		draft(2, "B", "attraction"),
		draft(3, "C", "attraction"),
	}

	got, err := svc.Plan(context.Background(), items, "14:30")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "14:30", got[0].Start)
	assert.Equal(t, "10:00", got[1].Start)
	assert.Equal(t, "10:00", got[2].Start)
}

func TestPlan_DropsDraftMoveEntries(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{legKeyOf("A", "B"): 10}}
	svc := newScheduleService(geo)

	items := []plan_models.DraftItem{
		draft(1, "A", "cafe"),
		{Day: 1, Type: "move", Name: "stale bus ride"},
		draft(1, "B", "cafe"),
	}

	got, err := svc.Plan(context.Background(), items, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	move := got[1]
	assert.Equal(t, plan_models.ItemMove, move.Type)
	assert.Equal(t, "A", move.From)
	assert.Equal(t, "B", move.To)
	assert.Equal(t, 10, move.DurationMinutes)
}

func TestPlanDay_RouteFailureFallsBackToDefaultLeg(t *testing.T) {
	// no legs known: every route lookup fails
	geo := &fakeGeoService{}
	svc := newScheduleService(geo)

	dayStart := time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC)
	got, err := svc.PlanDay(context.Background(), 1, []plan_models.DraftItem{
		draft(1, "A", "cafe"),
		draft(1, "B", "cafe"),
	}, dayStart)
	require.NoError(t, err)
	require.Len(t, got, 3)

	move := got[1]
	assert.Equal(t, plan_models.ItemMove, move.Type)
	assert.Equal(t, defaultLegMinutes, move.DurationMinutes)
	assert.Equal(t, "transfer", move.TransportDetail)
	assert.True(t, move.Estimated)
	// the degraded leg still advances the cursor
	assert.Equal(t, move.End, got[2].Start)
}

func TestPlanDay_MoveDetailCarriesProviderSteps(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{legKeyOf("A", "B"): 12}}
	svc := newScheduleService(geo)

	dayStart := time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC)
	got, err := svc.PlanDay(context.Background(), 1, []plan_models.DraftItem{
		draft(1, "A", "cafe"),
		draft(1, "B", "cafe"),
	}, dayStart)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "[Bus] 1002", got[1].TransportDetail)
	assert.False(t, got[1].Estimated)
}

func TestEstimateStay_FallsBackFromCategoryToName(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{}}
	svc := newScheduleService(geo)

	dayStart := time.Date(2000, time.January, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		item     plan_models.DraftItem
		wantStay int
	}{
		{"category wins", draft(1, "Anything", "theme_park"), 180},
		{"name keyword fallback", draft(1, "Seoul Grand Museum", ""), 120},
		{"default", draft(1, "Mystery Stop", ""), 90},
	}
	for _, tt := range tests {
		got, err := svc.PlanDay(context.Background(), 1, []plan_models.DraftItem{tt.item}, dayStart)
		require.NoError(t, err, tt.name)
		require.Len(t, got, 1, tt.name)
		assert.Equal(t, tt.wantStay, got[0].DurationMinutes, tt.name)
	}
}

func TestPlan_UnassignedDayDefaultsToDayOne(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{legKeyOf("A", "B"): 5}}
	svc := newScheduleService(geo)

	items := []plan_models.DraftItem{
		draft(0, "A", "cafe"),
		draft(1, "B", "cafe"),
	}

	got, err := svc.Plan(context.Background(), items, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, item := range got {
		assert.Equal(t, 1, item.Day)
	}
}

func TestPlan_CancelledContextStopsPlanning(t *testing.T) {
	geo := &fakeGeoService{legs: map[string]int{}}
	svc := newScheduleService(geo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Plan(ctx, []plan_models.DraftItem{draft(1, "A", "cafe")}, "")
	assert.ErrorIs(t, err, context.Canceled)
}
