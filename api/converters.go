package api

import (
	"sportLink/services/activity"
	"sportLink/services/location"
	"sportLink/services/user"
	"sportLink/utils"
)

func FromActivity(a activity.Activity) Activity {
	out := Activity{
		Id:                 a.ID,
		Title:              a.Title,
		OrganizerId:        a.OrganizerID,
		InfrastructureId:   a.InfrastructureID,
		Sport:              a.Sport,
		Interval:           Interval{Start: a.Interval.Start, DurationMinutes: a.Interval.DurationMinutes},
		SoughtParticipants: a.SoughtParticipants,
		Participants:       a.Participants,
		Status:             ActivityStatus(a.Status),
		OpenSlots:          a.OpenSlots,
		InvitationsOpen:    a.InvitationsOpen,
	}
	if out.Participants == nil {
		out.Participants = []string{}
	}
	if a.Description != "" {
		out.Description = utils.ToPointer(a.Description)
	}
	if len(a.Messages) > 0 {
		messages := make([]Message, 0, len(a.Messages))
		for _, m := range a.Messages {
			messages = append(messages, Message{AuthorId: m.AuthorID, Text: m.Text, SentAt: m.SentAt})
		}
		out.Messages = &messages
	}
	if !a.CreatedAt.IsZero() {
		out.CreatedAt = utils.ToPointer(a.CreatedAt)
	}
	if !a.UpdatedAt.IsZero() {
		out.UpdatedAt = utils.ToPointer(a.UpdatedAt)
	}
	return out
}

func FromActivities(activities []activity.Activity) ActivityList {
	list := ActivityList{Activities: make([]Activity, 0, len(activities))}
	for _, a := range activities {
		list.Activities = append(list.Activities, FromActivity(a))
	}
	return list
}

// ToActivity builds the activity described by a create request. The
// organizer is the caller, never the body.
func ToActivity(req CreateActivityRequest, organizerID string) activity.Activity {
	a := activity.Activity{
		OrganizerID:        organizerID,
		InfrastructureID:   req.InfrastructureId,
		Sport:              req.Sport,
		Interval:           activity.Interval{Start: req.Interval.Start, DurationMinutes: req.Interval.DurationMinutes},
		SoughtParticipants: req.SoughtParticipants,
		Participants:       []string{organizerID},
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.InvitationsOpen != nil {
		a.InvitationsOpen = *req.InvitationsOpen
	}
	return a
}

func FromInfrastructure(infra location.Infrastructure, park location.Park) InfrastructureDetails {
	out := InfrastructureDetails{
		Infrastructure: Infrastructure{
			Id:          infra.ID,
			Name:        infra.Name,
			Sports:      infra.Sports,
			Coordinates: Coordinates{Lat: infra.Coordinates.Latitude, Lng: infra.Coordinates.Longitude},
		},
		Park: Park{Id: park.ID, Name: park.Name},
	}
	if out.Infrastructure.Sports == nil {
		out.Infrastructure.Sports = []string{}
	}
	if park.Address != "" {
		out.Park.Address = utils.ToPointer(park.Address)
	}
	return out
}

func FromAvailabilities(av user.Availabilities) Availabilities {
	out := make(Availabilities, len(av))
	for day, slots := range av {
		converted := make([]Slot, 0, len(slots))
		for _, slot := range slots {
			converted = append(converted, Slot{Start: slot.Start, End: slot.End})
		}
		out[string(day)] = converted
	}
	return out
}

func ToAvailabilities(av Availabilities) user.Availabilities {
	out := make(user.Availabilities, len(av))
	for day, slots := range av {
		converted := make([]user.Slot, 0, len(slots))
		for _, slot := range slots {
			converted = append(converted, user.Slot{Start: slot.Start, End: slot.End})
		}
		out[user.Weekday(day)] = converted
	}
	return out
}
