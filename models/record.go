// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NumericRecordFields lists the record fields the server can compute
// statistics for (GET /device/:id/stats/:field).
var NumericRecordFields = []string{
	"cpm",
	"acpm",
	"usv",
	"co2",
	"hcho",
	"tmp",
	"ap",
	"hmdt",
	"accy",
}

// Record is one measurement sample. The server drops NaN fields from its
// public JSON, so every measurement is optional.
type Record struct {
	Date Timestamp `json:"date"`

	// CPM is counts per minute; ACPM the averaged counts per minute.
	CPM  *float64 `json:"cpm,omitempty"`
	ACPM *float64 `json:"acpm,omitempty"`
	// USV is the dose rate in µSv/h.
	USV *float64 `json:"usv,omitempty"`

	CO2  *float64 `json:"co2,omitempty"`
	HCHO *float64 `json:"hcho,omitempty"`
	Tmp  *float64 `json:"tmp,omitempty"`
	AP   *float64 `json:"ap,omitempty"`
	Hmdt *float64 `json:"hmdt,omitempty"`
	Accy *float64 `json:"accy,omitempty"`

	Type     string    `json:"type,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// Field returns the value of the named numeric field and whether it is set.
func (r Record) Field(name string) (float64, bool) {
	var v *float64
	switch name {
	case "cpm":
		v = r.CPM
	case "acpm":
		v = r.ACPM
	case "usv":
		v = r.USV
	case "co2":
		v = r.CO2
	case "hcho":
		v = r.HCHO
	case "tmp":
		v = r.Tmp
	case "ap":
		v = r.AP
	case "hmdt":
		v = r.Hmdt
	case "accy":
		v = r.Accy
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Float is a helper for building optional record fields.
func Float(v float64) *float64 {
	return &v
}
