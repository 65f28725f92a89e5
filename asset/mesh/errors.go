package mesh

import "errors"

var (
	ErrMissingPosition = errors.New("mesh: vertex format must have a position index")
	ErrFormatChanged   = errors.New("mesh: vertex format changed within an object")
	ErrUnknownFormat   = errors.New("mesh: vertex format is unknown")
)
