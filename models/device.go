// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/goccy/go-json"

// MapDevice is a device as returned by GET /map/:rect: just enough to place
// a pin and colour it by its last CPM.
type MapDevice struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Location *Location `json:"location,omitempty"`
	CPM      float64   `json:"cpm"`
}

// Device is a registered Geiger-counter data source.
type Device struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Model        string    `json:"model,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Owner        string    `json:"owner,omitempty"`
	Own          bool      `json:"own,omitempty"`
	Disabled     bool      `json:"disabled"`
	GmcID        int64     `json:"gmcId,omitempty"`
	ImportedFrom string    `json:"importedFrom,omitempty"`
	LastRecord   *Record   `json:"lastRecord,omitempty"`
	CPM          float64   `json:"cpm,omitempty"`

	ProxiesSettings map[string]map[string]any `json:"proxiesSettings,omitempty"`
}

// CreateDeviceRequest is the body of POST /device. Position is sent as
// `[lat, lon]`.
type CreateDeviceRequest struct {
	Name     string   `json:"name" validate:"required"`
	Model    string   `json:"model,omitempty"`
	Position Location `json:"position"`
}

func (r CreateDeviceRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string     `json:"name"`
		Model    string     `json:"model,omitempty"`
		Position [2]float64 `json:"position"`
	}{
		Name:     r.Name,
		Model:    r.Model,
		Position: r.Position.LatLon(),
	})
}

// DeviceUpdateParams is the body of PUT /device/:id. Nil fields are left
// untouched by the server. Location is sent as `[lat, lon]`.
type DeviceUpdateParams struct {
	Name            *string                   `json:"name,omitempty"`
	Model           *string                   `json:"model,omitempty"`
	Location        *Location                 `json:"location,omitempty"`
	ProxiesSettings map[string]map[string]any `json:"proxiesSettings,omitempty"`
}

func (p DeviceUpdateParams) MarshalJSON() ([]byte, error) {
	var location *[2]float64
	if p.Location != nil {
		ll := p.Location.LatLon()
		location = &ll
	}

	return json.Marshal(struct {
		Name            *string                   `json:"name,omitempty"`
		Model           *string                   `json:"model,omitempty"`
		Location        *[2]float64               `json:"location,omitempty"`
		ProxiesSettings map[string]map[string]any `json:"proxiesSettings,omitempty"`
	}{
		Name:            p.Name,
		Model:           p.Model,
		Location:        location,
		ProxiesSettings: p.ProxiesSettings,
	})
}

// DeviceUpdate is the success body of PUT /device/:id.
type DeviceUpdate struct {
	Changed int `json:"changed"`
}

// DisableDeviceRequest is the body of DELETE /device/:id. Delete removes the
// device permanently instead of only disabling it.
type DisableDeviceRequest struct {
	Delete bool `json:"delete"`
}

// DeviceStats holds aggregate statistics for one numeric record field.
type DeviceStats struct {
	Field      string  `json:"field"`
	Device     string  `json:"device"`
	Avg        float64 `json:"avg"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	StdDev     float64 `json:"stdDev"`
	SampleSize int     `json:"sampleSize"`
}

// DeviceCalendar is the per-day aggregation computed by the server.
type DeviceCalendar struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"deviceId"`
	CreatedAt  Timestamp `json:"createdAt"`
	Recs       []Record  `json:"recs"`
	InProgress bool      `json:"inProgress"`
}

// ImportStarted is returned by POST /import/:platform.
type ImportStarted struct {
	DeviceID string `json:"deviceId,omitempty"`
}

// ImportPlatforms lists the platforms accepted by POST /import/:platform and
// the option key each expects.
var ImportPlatforms = map[string]string{
	"gmcmap":      "gmcmapId",
	"safecast":    "safecastId",
	"uradmonitor": "uradmonitorId",
	"radmon":      "radmonUsername",
}

// ExportFormats lists the formats accepted by GET /device/:id/export/:format.
var ExportFormats = []string{"csv"}
