package tui

import "github.com/MKhiriev/gmc-client/models"

type recordMsg struct {
	record models.Record
}

// malformedMsg reports a message that could not be decoded; the stream is
// still open.
type malformedMsg struct {
	err error
}

// streamClosedMsg ends the stream. err is nil for a normal close.
type streamClosedMsg struct {
	err error
}
