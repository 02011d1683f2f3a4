// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request describes a raw call to the API. Path is relative to the API base
// path (for example "/device/42"). Body, when non-nil, is JSON-encoded.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}
