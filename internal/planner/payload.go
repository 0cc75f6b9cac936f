package planner

import "tripplanner/internal/models/request_models"

func (p *Plan) scheduleInputs() []request_models.ActivityScheduleInput {
	out := make([]request_models.ActivityScheduleInput, 0, len(p.activities))
	for _, a := range p.activities {
		out = append(out, request_models.ActivityScheduleInput{
			ActivityID: a.ActivityID,
			DayNumber:  a.DayNumber,
			StartTime:  FormatTime(a.StartTime),
			EndTime:    FormatTime(a.EndTime),
			OrderInDay: a.OrderInDay,
		})
	}
	return out
}

// ToPersistencePayload maps the plan onto the create-itinerary request. It
// does not validate; call Validate first.
func (p *Plan) ToPersistencePayload(userID int64) request_models.CreateItineraryRequest {
	return request_models.CreateItineraryRequest{
		UserID:      userID,
		Title:       p.info.Title,
		Description: p.info.Description,
		StartDate:   p.window.Start.Format(DateLayout),
		EndDate:     p.window.End.Format(DateLayout),
		Activities:  p.scheduleInputs(),
	}
}

func (p *Plan) ToModifyPayload(itineraryID int64) request_models.ModifyItineraryRequest {
	return request_models.ModifyItineraryRequest{
		ID:          itineraryID,
		Title:       p.info.Title,
		Description: p.info.Description,
		StartDate:   p.window.Start.Format(DateLayout),
		EndDate:     p.window.End.Format(DateLayout),
		Activities:  p.scheduleInputs(),
	}
}
