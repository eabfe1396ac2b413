package radio

import "errors"

var (
	// ErrNoInterface is returned when no 802.11 station interface exists.
	ErrNoInterface = errors.New("no wifi interface found")

	errMalformedBSS   = errors.New("malformed BSS record")
	errUnexpectedType = errors.New("unexpected property type")
)
