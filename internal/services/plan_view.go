package services

import (
	"time"

	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/pkg/utils"
)

func buildPlanResponse(draft *dbm.PlanDraft, p *planner.Plan) *response_models.PlanResponse {
	info := p.Info()
	window := p.Window()

	days := make([]response_models.PlanDayResponse, 0, p.DayCount())
	for day := 1; day <= p.DayCount(); day++ {
		days = append(days, buildDay(p, day))
	}

	orphans := make([]response_models.PlannedActivityResponse, 0)
	for _, a := range p.Orphans() {
		orphans = append(orphans, plannedActivity(p, a))
	}

	return &response_models.PlanResponse{
		ID:            draft.ID.String(),
		ItineraryID:   draft.ItineraryID,
		Title:         info.Title,
		Description:   info.Description,
		DestinationID: info.DestinationID,
		StartDate:     utils.FormatDate(window.Start),
		EndDate:       utils.FormatDate(window.End),
		DayCount:      p.DayCount(),
		ViewingDay:    p.ViewingDay(),
		ViewingDate:   utils.FormatDisplayDate(window.Date(p.ViewingDay())),
		Days:          days,
		Orphans:       orphans,
		Catalog:       toCatalogActivities(p.Catalog()),
		TripTotal:     p.TripTotal(),
		UpdatedAt:     time.Unix(draft.UpdatedAt, 0).UTC(),
	}
}

func buildDay(p *planner.Plan, day int) response_models.PlanDayResponse {
	activities := make([]response_models.PlannedActivityResponse, 0)
	for a := range p.ActivitiesForDay(day) {
		activities = append(activities, plannedActivity(p, a))
	}
	return response_models.PlanDayResponse{
		DayNumber:  day,
		Date:       utils.FormatDate(p.Window().Date(day)),
		Total:      p.DayTotal(day),
		Activities: activities,
	}
}

func plannedActivity(p *planner.Plan, a planner.ScheduledActivity) response_models.PlannedActivityResponse {
	ref, _ := p.Ref(a.ActivityID)
	return response_models.PlannedActivityResponse{
		TempID:     a.TempID,
		ActivityID: a.ActivityID,
		Name:       ref.Name,
		Title:      ref.Title,
		Address:    ref.Address,
		ImageURL:   ref.ImageURL,
		Price:      ref.Price,
		DayNumber:  a.DayNumber,
		OrderInDay: a.OrderInDay,
		StartTime:  planner.FormatTime(a.StartTime),
		EndTime:    planner.FormatTime(a.EndTime),
	}
}
