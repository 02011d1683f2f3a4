// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/gmc-client/models"
)

func (a *App) device(ctx context.Context, args []string) error {
	pos, _, err := positional(args, 1, "device <id>")
	if err != nil {
		return err
	}

	d, err := a.services.DeviceService.FetchDevice(ctx, pos[0])
	if err != nil {
		return err
	}
	return a.printJSON(d)
}

func (a *App) stats(ctx context.Context, args []string) error {
	pos, rest, err := positional(args, 2, "stats <id> <field> [-start t] [-end t]")
	if err != nil {
		return err
	}
	id, field := pos[0], pos[1]
	if !slices.Contains(models.NumericRecordFields, field) {
		return fmt.Errorf("%w: %q, want one of %v", ErrUnknownField, field, models.NumericRecordFields)
	}

	fs := a.flagSet("stats")
	rf := newRangeFlags(fs)
	if err = fs.Parse(rest); err != nil {
		return err
	}
	r, err := rf.timeRange()
	if err != nil {
		return err
	}

	s, err := a.services.DeviceService.FetchDeviceStats(ctx, id, field, r)
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintf(a.out, "No %s data in range\n", field)
		return nil
	}
	return a.printJSON(s)
}

func (a *App) timeline(ctx context.Context, args []string) error {
	pos, rest, err := positional(args, 1, "timeline <id> [-full] [-start t] [-end t]")
	if err != nil {
		return err
	}

	fs := a.flagSet("timeline")
	full := fs.Bool("full", false, "all fields instead of the summary")
	rf := newRangeFlags(fs)
	if err = fs.Parse(rest); err != nil {
		return err
	}
	r, err := rf.timeRange()
	if err != nil {
		return err
	}

	records, err := a.services.DeviceService.FetchTimeline(ctx, pos[0], models.TimelineQuery{Full: *full, TimeRange: r})
	if err != nil {
		return err
	}
	return a.printJSON(records)
}

func (a *App) calendar(ctx context.Context, args []string) error {
	pos, _, err := positional(args, 1, "calendar <id>")
	if err != nil {
		return err
	}

	c, err := a.services.DeviceService.FetchCalendar(ctx, pos[0])
	if err != nil {
		return err
	}
	return a.printJSON(c)
}

func (a *App) deviceMap(ctx context.Context, args []string) error {
	fs := a.flagSet("map")
	sw := fs.String("sw", "-180,-90", "south-west corner as lon,lat")
	ne := fs.String("ne", "180,90", "north-east corner as lon,lat")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		rect models.MapRect
		err  error
	)
	if rect.SouthWest, err = parseLocation(*sw); err != nil {
		return err
	}
	if rect.NorthEast, err = parseLocation(*ne); err != nil {
		return err
	}

	devices, err := a.services.DeviceService.FetchMap(ctx, rect)
	if err != nil {
		return err
	}
	return a.printJSON(devices)
}

func (a *App) createDevice(ctx context.Context, args []string) error {
	fs := a.flagSet("create-device")
	name := fs.String("name", "", "device name")
	model := fs.String("model", "", "device model")
	at := fs.String("at", "", "position as lon,lat")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *at == "" {
		return fmt.Errorf("%w: create-device requires -at", ErrUsage)
	}

	loc, err := parseLocation(*at)
	if err != nil {
		return err
	}

	d, err := a.services.DeviceService.CreateDevice(ctx, *name, *model, loc)
	if err != nil {
		return err
	}
	return a.printJSON(d)
}

func (a *App) updateDevice(ctx context.Context, args []string) error {
	pos, rest, err := positional(args, 1, "update-device <id> [-name s] [-model s] [-at lon,lat]")
	if err != nil {
		return err
	}

	fs := a.flagSet("update-device")
	name := fs.String("name", "", "new name")
	model := fs.String("model", "", "new model")
	at := fs.String("at", "", "new position as lon,lat")
	if err = fs.Parse(rest); err != nil {
		return err
	}

	set := visited(fs)
	var params models.DeviceUpdateParams
	if set["name"] {
		params.Name = models.String(*name)
	}
	if set["model"] {
		params.Model = models.String(*model)
	}
	if set["at"] {
		loc, err := parseLocation(*at)
		if err != nil {
			return err
		}
		params.Location = &loc
	}
	if len(set) == 0 {
		return ErrNothingToUpdate
	}

	u, err := a.services.DeviceService.UpdateDevice(ctx, pos[0], params)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %d field(s)\n", u.Changed)
	return nil
}

func (a *App) disableDevice(ctx context.Context, args []string) error {
	pos, rest, err := positional(args, 1, "disable-device <id> [-delete]")
	if err != nil {
		return err
	}

	fs := a.flagSet("disable-device")
	remove := fs.Bool("delete", false, "delete the device and its data")
	if err = fs.Parse(rest); err != nil {
		return err
	}

	resp, err := a.services.DeviceService.DisableDevice(ctx, pos[0], *remove)
	if err != nil {
		return err
	}
	a.printDescription(resp, "Device disabled")
	return nil
}

func (a *App) importDevice(ctx context.Context, args []string) error {
	pos, _, err := positional(args, 2, "import <platform> <value>")
	if err != nil {
		return err
	}
	platform, value := pos[0], pos[1]

	var options map[string]any
	if key, ok := models.ImportPlatforms[platform]; ok {
		options = map[string]any{key: value}
	}

	started, err := a.services.DeviceService.ImportDevice(ctx, platform, options)
	if err != nil {
		return err
	}
	if started.DeviceID != "" {
		fmt.Fprintf(a.out, "Import started: device %s\n", started.DeviceID)
		return nil
	}
	fmt.Fprintln(a.out, "Import started")
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	pos, rest, err := positional(args, 1, "export <id> [-format csv] [-start t] [-end t] [-o file] [-url]")
	if err != nil {
		return err
	}
	id := pos[0]

	fs := a.flagSet("export")
	format := fs.String("format", models.ExportFormats[0], "export format")
	output := fs.String("o", "-", "output file, - for stdout")
	onlyURL := fs.Bool("url", false, "print the download URL instead of downloading")
	rf := newRangeFlags(fs)
	if err = fs.Parse(rest); err != nil {
		return err
	}
	r, err := rf.timeRange()
	if err != nil {
		return err
	}

	if *onlyURL {
		_, err = fmt.Fprintln(a.out, a.services.DeviceService.ExportURL(id, *format, r))
		return err
	}

	if *output == "-" || *output == "" {
		return a.services.DeviceService.ExportTimeline(ctx, id, *format, r, a.out)
	}

	f, err := a.create(*output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err = a.services.DeviceService.ExportTimeline(ctx, id, *format, r, f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	fmt.Fprintf(a.errOut, "Saved to %s\n", *output)
	return nil
}

func (a *App) liveTimeline(ctx context.Context, args []string) error {
	pos, _, err := positional(args, 1, "live <id>")
	if err != nil {
		return err
	}

	stream, err := a.services.DeviceService.OpenLiveTimeline(ctx, pos[0])
	if err != nil {
		return err
	}
	return a.live.RunLive(ctx, pos[0], stream)
}
