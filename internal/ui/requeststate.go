package ui

import (
	"slices"

	"widgetlab/internal/news"
)

// RequestStatus is the active tag of a RequestState.
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// RequestState is the lifecycle of a single fetch attempt.
// Exactly one tag is active; items are only visible under StatusSuccess
// and the reason only under StatusFailed.
type RequestState struct {
	status RequestStatus
	items  []news.Item
	reason string
}

// IdleState returns the state of a view that has not fetched yet.
func IdleState() RequestState {
	return RequestState{status: StatusIdle}
}

// Status returns the active tag.
func (s RequestState) Status() RequestStatus {
	return s.status
}

// Items returns the fetched items in received order, or nil unless the fetch succeeded.
func (s RequestState) Items() []news.Item {
	if s.status != StatusSuccess {
		return nil
	}
	return slices.Clone(s.items)
}

// Reason returns the failure message, or "" unless the fetch failed.
func (s RequestState) Reason() string {
	if s.status != StatusFailed {
		return ""
	}
	return s.reason
}

// Trigger starts a fetch. It reports false, leaving the state unchanged,
// while a fetch is already in flight.
func (s RequestState) Trigger() (RequestState, bool) {
	if s.status == StatusLoading {
		return s, false
	}
	return RequestState{status: StatusLoading}, true
}

// Resolve applies the outcome of the in-flight fetch. Any error becomes
// StatusFailed with news.FailedReason; the cause is not kept.
// Outside StatusLoading there is nothing to resolve and s is returned as is.
func (s RequestState) Resolve(items []news.Item, err error) RequestState {
	if s.status != StatusLoading {
		return s
	}
	if err != nil {
		return RequestState{status: StatusFailed, reason: news.FailedReason}
	}
	return RequestState{status: StatusSuccess, items: slices.Clone(items)}
}
