// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ErrorResult is the error body returned by the API:
//
//	{"status": 403, "description": "Invalid username or password", "extras": {...}}
//
// The same shape is used as the confirmation body of some mutations
// (PUT /user/me, DELETE /user/me), where Status is 200.
type ErrorResult struct {
	Status      int            `json:"status"`
	Description string         `json:"description"`
	Extras      map[string]any `json:"extras,omitempty"`
}

// Error implements error.
func (e ErrorResult) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("status %d", e.Status)
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Description)
}

// Confirmation is the free-form success body of mutations such as
// PUT /auth/mfa or DELETE /auth/mfa.
type Confirmation map[string]any

// Description returns the "description" member when the server sent one.
func (c Confirmation) Description() string {
	s, _ := c["description"].(string)
	return s
}
