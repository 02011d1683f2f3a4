package models

import "time"

// TimeRange bounds a query. A zero Start or End is left out of the request.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Complete reports whether both bounds are set.
func (r TimeRange) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// TimelineQuery are the parameters of GET /device/:id/timeline. Full asks for
// every record instead of the server's downsampled view.
type TimelineQuery struct {
	Full bool
	TimeRange
}
