package pb

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// FromAlarm converts a domain alarm to its wire representation.
func FromAlarm(a *alarm.Alarm) *Alarm {
	if a == nil {
		return nil
	}

	var createdAt *timestamppb.Timestamp
	if !a.CreatedAt.IsZero() {
		createdAt = timestamppb.New(a.CreatedAt)
	}

	return &Alarm{
		Id:                   a.ID,
		DurationTotalSeconds: a.DurationTotalSeconds,
		RemainingSeconds:     a.RemainingSeconds,
		Sound:                a.Sound.String(),
		IsRinging:            a.IsRinging,
		HasPlayedOnce:        a.HasPlayedOnce,
		CreatedAt:            createdAt,
	}
}

// ToAlarm converts the wire representation back to a domain alarm.
func ToAlarm(msg *Alarm) *alarm.Alarm {
	if msg == nil {
		return nil
	}

	a := &alarm.Alarm{
		ID:                   msg.GetId(),
		DurationTotalSeconds: msg.GetDurationTotalSeconds(),
		RemainingSeconds:     msg.GetRemainingSeconds(),
		Sound:                alarm.Sound(msg.GetSound()),
		IsRinging:            msg.GetIsRinging(),
		HasPlayedOnce:        msg.GetHasPlayedOnce(),
	}

	if msg.GetCreatedAt() != nil {
		a.CreatedAt = msg.GetCreatedAt().AsTime()
	}

	return a
}

// FromAlarms converts an ordered alarm list.
func FromAlarms(alarms []*alarm.Alarm) []*Alarm {
	result := make([]*Alarm, 0, len(alarms))
	for _, a := range alarms {
		result = append(result, FromAlarm(a))
	}

	return result
}

// ToAlarms converts an ordered wire list, skipping nil entries.
func ToAlarms(msgs []*Alarm) []*alarm.Alarm {
	result := make([]*alarm.Alarm, 0, len(msgs))
	for _, msg := range msgs {
		if msg == nil {
			continue
		}

		result = append(result, ToAlarm(msg))
	}

	return result
}

// FromDraft converts a draft to an AddAlarm request.
func FromDraft(d *alarm.Draft) *AddAlarmRequest {
	if d == nil {
		return new(AddAlarmRequest)
	}

	return &AddAlarmRequest{
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Seconds: d.Seconds,
		Sound:   d.Sound.String(),
	}
}

// ToDraft converts an AddAlarm request back to a draft. Values are not
// clamped here; callers normalize.
func ToDraft(req *AddAlarmRequest) *alarm.Draft {
	return &alarm.Draft{
		Hours:   req.GetHours(),
		Minutes: req.GetMinutes(),
		Seconds: req.GetSeconds(),
		Sound:   alarm.Sound(req.GetSound()),
	}
}

// FromSounds builds the ListSounds response.
func FromSounds(sounds []alarm.Sound) *ListSoundsResponse {
	names := make([]string, 0, len(sounds))
	for _, s := range sounds {
		names = append(names, s.String())
	}

	return &ListSoundsResponse{
		Sounds:       names,
		DefaultSound: alarm.DefaultSound.String(),
	}
}

// ToSounds extracts the catalog from a ListSounds response.
func ToSounds(resp *ListSoundsResponse) []alarm.Sound {
	result := make([]alarm.Sound, 0, len(resp.GetSounds()))
	for _, name := range resp.GetSounds() {
		result = append(result, alarm.Sound(name))
	}

	return result
}
