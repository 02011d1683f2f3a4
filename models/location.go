// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrInvalidLocation is returned when a location is not a two-element
// numeric array.
var ErrInvalidLocation = errors.New("invalid location")

// Location is a geographic point. The server answers in GeoJSON order,
// `[lon, lat]`, for records, devices and map pins. Request bodies that carry
// a position (device creation, device update, map rectangles) are read by the
// server as `[lat, lon]` and go through LatLon instead.
type Location struct {
	Lon float64 `validate:"longitude"`
	Lat float64 `validate:"latitude"`
}

// MarshalJSON encodes the location as `[lon, lat]`.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{l.Lon, l.Lat})
}

// UnmarshalJSON decodes a `[lon, lat]` array.
func (l *Location) UnmarshalJSON(b []byte) error {
	var coords []float64
	if err := json.Unmarshal(b, &coords); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	if len(coords) != 2 {
		return fmt.Errorf("%w: expected 2 coordinates, got %d", ErrInvalidLocation, len(coords))
	}

	l.Lon, l.Lat = coords[0], coords[1]
	return nil
}

// LatLon returns the coordinates in the `[lat, lon]` order request bodies use.
func (l Location) LatLon() [2]float64 {
	return [2]float64{l.Lat, l.Lon}
}

// String renders the location as "lat,lon", the order humans read.
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lon)
}

// MapRect is a bounding box for GET /map/:rect, encoded as
// `[swlat, swlon, nelat, nelon]`.
type MapRect struct {
	SouthWest Location
	NorthEast Location
}

// MarshalJSON encodes the rectangle as a flat four-element array.
func (r MapRect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.SouthWest.Lat, r.SouthWest.Lon, r.NorthEast.Lat, r.NorthEast.Lon})
}
