package cleaning

import "errors"

// ErrEmptyPitching is returned when the pitcher set cannot be computed.
var ErrEmptyPitching = errors.New("pitching table is empty")
