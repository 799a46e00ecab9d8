package optimizer

import "errors"

// ErrNoZones indicates the input has no zones at all, which makes the
// energized-by label domain ([0,|Z|]) degenerate.
var ErrNoZones = errors.New("optimizer: input has no zones")
