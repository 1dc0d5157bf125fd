package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"dongseon/internal/models/plan_models"
	"dongseon/pkg/utils"
)

const (
	// Every day after the first starts here regardless of caller input or
	// drift accumulated on earlier days.
	resetHour   = 10
	resetMinute = 0

	// Conservative leg length used when a route lookup fails outright.
	defaultLegMinutes = 30

	defaultStayMinutes = 90
)

// Stay durations per classified category, in minutes.
var stayMinutesByCategory = map[plan_models.Category]int{
	plan_models.CategoryDining:     90,
	plan_models.CategoryCafe:       60,
	plan_models.CategoryAttraction: 120,
	plan_models.CategoryThemePark:  180,
	plan_models.CategoryLodging:    0,
}

type ScheduleServiceInterface interface {
	// PlanDay turns one day's ordered venues into an alternating
	// activity/move timeline starting at dayStart.
	PlanDay(ctx context.Context, day int, venues []plan_models.DraftItem, dayStart time.Time) (plan_models.Itinerary, error)

	// Plan schedules a whole multi-day draft. startClock ("HH:MM")
	// applies to day 1 only; later days reset to the canonical morning
	// start. Pre-existing move entries in the draft are discarded.
	Plan(ctx context.Context, items []plan_models.DraftItem, startClock string) (plan_models.Itinerary, error)
}

type ScheduleService struct {
	geo        GeoServiceInterface
	classifier CandidateFilterInterface
	mode       string
}

func NewScheduleService(geo GeoServiceInterface, classifier CandidateFilterInterface) ScheduleServiceInterface {
	return &ScheduleService{
		geo:        geo,
		classifier: classifier,
		mode:       "transit",
	}
}

// The planner is a pure function of its inputs; timelines only ever render
// wall-clock strings, so days are laid out on a fixed reference date.
var scheduleEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func (s *ScheduleService) Plan(ctx context.Context, items []plan_models.DraftItem, startClock string) (plan_models.Itinerary, error) {
	startHour, startMinute := resetHour, resetMinute
	if startClock != "" {
		h, m, err := utils.ParseClock(startClock)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		startHour, startMinute = h, m
	}

	byDay := make(map[int][]plan_models.DraftItem)
	for _, item := range items {
		// moves are never carried over; they are recomputed per leg
		if strings.EqualFold(item.Type, string(plan_models.ItemMove)) {
			continue
		}
		day := item.Day
		if day < 1 {
			day = 1
		}
		byDay[day] = append(byDay[day], item)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	itinerary := make(plan_models.Itinerary, 0, len(items)*2)
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		base := scheduleEpoch.AddDate(0, 0, day-1)
		var dayStart time.Time
		if day == 1 {
			dayStart = time.Date(base.Year(), base.Month(), base.Day(), startHour, startMinute, 0, 0, base.Location())
		} else {
			dayStart = time.Date(base.Year(), base.Month(), base.Day(), resetHour, resetMinute, 0, 0, base.Location())
		}

		timeline, err := s.PlanDay(ctx, day, byDay[day], dayStart)
		if err != nil {
			return nil, err
		}
		itinerary = append(itinerary, timeline...)
	}

	return itinerary, nil
}

func (s *ScheduleService) PlanDay(ctx context.Context, day int, venues []plan_models.DraftItem, dayStart time.Time) (plan_models.Itinerary, error) {
	if len(venues) == 0 {
		return plan_models.Itinerary{}, nil
	}

	timeline := make(plan_models.Itinerary, 0, len(venues)*2-1)
	cursor := dayStart

	for i, venue := range venues {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i > 0 {
			prev := venues[i-1]
			move := s.legItem(ctx, day, prev.Name, venue.Name, cursor)
			timeline = append(timeline, move)
			cursor = cursor.Add(time.Duration(move.DurationMinutes) * time.Minute)
		}

		stay := s.estimateStay(venue)
		start := cursor
		cursor = cursor.Add(time.Duration(stay) * time.Minute)

		timeline = append(timeline, plan_models.ItineraryItem{
			Day:             day,
			Type:            plan_models.ItemActivity,
			Name:            venue.Name,
			Category:        venue.Category,
			Description:     venue.Description,
			Start:           utils.FormatClock(start),
			End:             utils.FormatClock(cursor),
			DurationMinutes: stay,
		})
	}

	return timeline, nil
}

func (s *ScheduleService) legItem(ctx context.Context, day int, from, to string, start time.Time) plan_models.ItineraryItem {
	minutes := defaultLegMinutes
	mode := s.mode
	detail := "transfer"
	estimated := true

	leg, err := s.geo.Route(ctx, from, to, s.mode, start)
	if err != nil {
		// degraded leg: keep planning with the conservative default
		log.Printf("route %q -> %q unresolved, using %d min default: %v", from, to, defaultLegMinutes, err)
	} else {
		minutes = leg.DurationSeconds / 60
		if minutes < 1 {
			minutes = 1
		}
		mode = leg.Mode
		estimated = leg.Estimated
		if len(leg.Steps) > 0 {
			detail = strings.Join(leg.Steps, " -> ")
		} else if leg.Estimated {
			detail = "estimated"
		}
	}

	end := start.Add(time.Duration(minutes) * time.Minute)
	return plan_models.ItineraryItem{
		Day:             day,
		Type:            plan_models.ItemMove,
		From:            from,
		To:              to,
		Start:           utils.FormatClock(start),
		End:             utils.FormatClock(end),
		DurationMinutes: minutes,
		TransportMode:   mode,
		TransportDetail: detail,
		Estimated:       estimated,
	}
}

// estimateStay looks the category up in the stay table, first as a
// literal enum value, then classified from free text, then from the venue
// name, before the 90-minute default.
func (s *ScheduleService) estimateStay(venue plan_models.DraftItem) int {
	literal := plan_models.Category(strings.ToLower(strings.TrimSpace(venue.Category)))
	if minutes, ok := stayMinutesByCategory[literal]; ok {
		return minutes
	}

	cat := s.classifier.Classify(venue.Category)
	if minutes, ok := stayMinutesByCategory[cat]; ok {
		return minutes
	}

	cat = s.classifier.Classify(venue.Name)
	if minutes, ok := stayMinutesByCategory[cat]; ok {
		return minutes
	}

	return defaultStayMinutes
}
