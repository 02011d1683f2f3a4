package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/models"
)

// maxLiveRecords bounds the in-memory history of the live view.
const maxLiveRecords = 500

const liveTimeLayout = "2006-01-02 15:04:05"

var liveColumns = []table.Column{
	{Title: "Time", Width: 19},
	{Title: "CPM", Width: 8},
	{Title: "ACPM", Width: 8},
	{Title: "µSv/h", Width: 8},
	{Title: "Tmp", Width: 7},
	{Title: "Hmdt", Width: 7},
	{Title: "AP", Width: 8},
	{Title: "CO2", Width: 7},
}

type liveModel struct {
	deviceID string
	stream   adapter.LiveStream

	table   table.Model
	records []models.Record
	skipped int

	closed bool
	err    error
}

func newLiveModel(deviceID string, stream adapter.LiveStream) liveModel {
	t := table.New(
		table.WithColumns(liveColumns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	t.SetStyles(s)

	return liveModel{deviceID: deviceID, stream: stream, table: t}
}

// waitForRecord blocks on the stream until the next message.
func waitForRecord(stream adapter.LiveStream) tea.Cmd {
	return func() tea.Msg {
		rec, err := stream.Recv()
		switch {
		case err == nil:
			return recordMsg{record: rec}
		case errors.Is(err, adapter.ErrMalformedRecord):
			return malformedMsg{err: err}
		case errors.Is(err, io.EOF):
			return streamClosedMsg{}
		default:
			return streamClosedMsg{err: err}
		}
	}
}

func (m liveModel) Init() tea.Cmd {
	return waitForRecord(m.stream)
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordMsg:
		m.records = append([]models.Record{msg.record}, m.records...)
		if len(m.records) > maxLiveRecords {
			m.records = m.records[:maxLiveRecords]
		}
		m.table.SetRows(recordRows(m.records))
		return m, waitForRecord(m.stream)

	case malformedMsg:
		m.skipped++
		return m, waitForRecord(m.stream)

	case streamClosedMsg:
		m.closed = true
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			_ = m.stream.Close()
			return m, tea.Quit
		case key.Matches(msg, keys.clear):
			m.records = nil
			m.table.SetRows(nil)
			return m, nil
		case key.Matches(msg, keys.top):
			m.table.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m liveModel) View() string {
	title := titleStyle.Render(fmt.Sprintf("Live timeline: %s", m.deviceID))

	status := statusStyle.Render(fmt.Sprintf("%d records", len(m.records)))
	if m.skipped > 0 {
		status += helpStyle.Render(fmt.Sprintf("  (%d malformed skipped)", m.skipped))
	}
	if m.closed {
		if m.err != nil {
			status += "\n" + errorStyle.Render("Stream failed: "+humanizeError(m.err))
		} else {
			status += "\n" + helpStyle.Render("Stream closed by server")
		}
	}

	help := helpStyle.Render("↑/↓ scroll  g top  c clear  q quit")

	return appStyle.Render(title + "\n" + status + "\n\n" + tableBorder.Render(m.table.View()) + "\n" + help)
}

func recordRows(records []models.Record) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}
	return rows
}

func recordRow(r models.Record) table.Row {
	date := "-"
	if !r.Date.IsZero() {
		date = r.Date.Local().Format(liveTimeLayout)
	}
	return table.Row{
		date,
		valueOrDash(r.CPM),
		valueOrDash(r.ACPM),
		valueOrDash(r.USV),
		valueOrDash(r.Tmp),
		valueOrDash(r.Hmdt),
		valueOrDash(r.AP),
		valueOrDash(r.CO2),
	}
}
