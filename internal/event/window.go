package event

import (
	"time"
)

// Overlaps reports whether the half-open windows [s1,e1) and [s2,e2)
// intersect. Back-to-back windows (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Conflicting classifies the most specific collision between a draft and the
// events already on the organization's timeline. A clash inside the draft's
// own group wins over the organization-wide single-track clash, so the caller
// can report the "same club" message when it applies. Returns nil when the
// window is free.
//
// The group check is a subset of the organization check; classification over
// one result set replaces the two queries the naive version would run.
func Conflicting(candidate *Event, existing []Event) *ConflictError {
	var first *Event
	for i := range existing {
		other := &existing[i]
		if other.ID == candidate.ID {
			continue
		}
		if !Overlaps(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			continue
		}
		if candidate.GroupID != nil && other.GroupID != nil && *other.GroupID == *candidate.GroupID {
			return &ConflictError{EventID: other.ID, Title: other.Title, Level: ConflictLevelGroup}
		}
		if first == nil {
			first = other
		}
	}
	if first != nil {
		return &ConflictError{EventID: first.ID, Title: first.Title, Level: ConflictLevelOrganization}
	}
	return nil
}
