package event

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrFinancialsNotFound = errors.New("event financials not found")
)
