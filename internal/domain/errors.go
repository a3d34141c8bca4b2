package domain

import "errors"

var (
	// ErrEmptyRoster is returned when a rotation is evaluated without presenters
	ErrEmptyRoster = errors.New("roster has no presenters")

	// ErrMinimumPresenters blocks removals that would shrink the roster below MinPresenters
	ErrMinimumPresenters = errors.New("Cannot remove presenter. Minimum 2 presenters required.")

	// ErrPresenterNotFound is returned when an action references an unknown presenter id
	ErrPresenterNotFound = errors.New("presenter not found in rotation")

	// ErrInvalidDay is returned for presentation days outside 0-6
	ErrInvalidDay = errors.New("invalid presentation day. Use numbers 0-6 (0=Sun, 1=Mon, ..., 6=Sat)")
)
