// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the live telemetry view of the terminal client.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/logger"
)

// TUI renders the live telemetry view with bubbletea.
type TUI struct {
	logger  *logger.Logger
	options []tea.ProgramOption
}

// New returns a TUI; without options its programs use the alternate screen.
func New(log *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{logger: log, options: options}
}

// RunLive shows records from stream until the user quits, ctx is done or
// the stream fails. The stream is always closed on return.
func (t *TUI) RunLive(ctx context.Context, deviceID string, stream adapter.LiveStream) error {
	defer stream.Close()

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(newLiveModel(deviceID, stream), options...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(liveModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Debug().
		Str("device", deviceID).
		Int("records", len(result.records)).
		Int("skipped", result.skipped).
		Msg("live view finished")

	if result.err != nil && !errors.Is(result.err, io.EOF) {
		return result.err
	}
	return nil
}
