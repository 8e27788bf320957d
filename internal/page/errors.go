package page

import "errors"

var (
	// ErrUnknownFilter is returned when no filter button carries the requested value
	ErrUnknownFilter = errors.New("unknown filter")
	// ErrUnknownTarget is returned when a click names an element the page does not have
	ErrUnknownTarget = errors.New("unknown click target")
)
