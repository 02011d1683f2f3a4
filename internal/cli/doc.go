// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the terminal client: one command per invocation,
// dispatched by name, with interactive prompts for secrets and the live view
// delegated to package tui.
package cli
