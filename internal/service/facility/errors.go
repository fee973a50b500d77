package facility

import "errors"

var ErrNoActiveFacility = errors.New("no active facility")
