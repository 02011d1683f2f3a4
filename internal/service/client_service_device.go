// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/models"
)

type clientDeviceService struct {
	adapter  adapter.ServerAdapter
	validate *validator.Validate
}

func NewClientDeviceService(serverAdapter adapter.ServerAdapter) ClientDeviceService {
	return &clientDeviceService{
		adapter:  serverAdapter,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (d *clientDeviceService) FetchDevice(ctx context.Context, id string) (models.Device, error) {
	device, err := d.adapter.GetDevice(ctx, id)
	if err != nil {
		return models.Device{}, fmt.Errorf("fetch device %s: %w", id, err)
	}
	return device, nil
}

func (d *clientDeviceService) FetchDeviceStats(ctx context.Context, id, field string, r models.TimeRange) (*models.DeviceStats, error) {
	stats, err := d.adapter.GetDeviceStats(ctx, id, field, r)
	if err != nil {
		return nil, fmt.Errorf("fetch %s stats of %s: %w", field, id, err)
	}
	if stats == nil {
		logger.FromContext(ctx).Debug().Str("device", id).Str("field", field).Msg("no samples in range")
	}
	return stats, nil
}

func (d *clientDeviceService) FetchTimeline(ctx context.Context, id string, q models.TimelineQuery) ([]models.Record, error) {
	records, err := d.adapter.GetTimeline(ctx, id, q)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline of %s: %w", id, err)
	}
	return records, nil
}

func (d *clientDeviceService) FetchCalendar(ctx context.Context, id string) (models.DeviceCalendar, error) {
	calendar, err := d.adapter.GetCalendar(ctx, id)
	if err != nil {
		return models.DeviceCalendar{}, fmt.Errorf("fetch calendar of %s: %w", id, err)
	}
	return calendar, nil
}

func (d *clientDeviceService) FetchMap(ctx context.Context, rect models.MapRect) ([]models.MapDevice, error) {
	devices, err := d.adapter.GetMap(ctx, rect)
	if err != nil {
		return nil, fmt.Errorf("fetch map: %w", err)
	}
	return devices, nil
}

func (d *clientDeviceService) CreateDevice(ctx context.Context, name, model string, location models.Location) (models.Device, error) {
	req := models.CreateDeviceRequest{Name: name, Model: model, Position: location}
	if err := d.validate.Struct(req); err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrInvalidDevice, err)
	}

	device, err := d.adapter.CreateDevice(ctx, req)
	if err != nil {
		return models.Device{}, fmt.Errorf("create device: %w", err)
	}
	return device, nil
}

func (d *clientDeviceService) UpdateDevice(ctx context.Context, id string, params models.DeviceUpdateParams) (models.DeviceUpdate, error) {
	update, err := d.adapter.UpdateDevice(ctx, id, params)
	if err != nil {
		return models.DeviceUpdate{}, fmt.Errorf("update device %s: %w", id, err)
	}
	return update, nil
}

func (d *clientDeviceService) DisableDevice(ctx context.Context, id string, remove bool) (models.Confirmation, error) {
	resp, err := d.adapter.DisableDevice(ctx, id, models.DisableDeviceRequest{Delete: remove})
	if err != nil {
		return nil, fmt.Errorf("disable device %s: %w", id, err)
	}
	return resp, nil
}

func (d *clientDeviceService) ImportDevice(ctx context.Context, platform string, options map[string]any) (models.ImportStarted, error) {
	if _, ok := models.ImportPlatforms[platform]; !ok {
		return models.ImportStarted{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}

	started, err := d.adapter.ImportDevice(ctx, platform, options)
	if err != nil {
		return models.ImportStarted{}, fmt.Errorf("import from %s: %w", platform, err)
	}
	return started, nil
}

func (d *clientDeviceService) ExportURL(id, format string, r models.TimeRange) string {
	return d.adapter.ExportURL(id, format, r)
}

func (d *clientDeviceService) ExportTimeline(ctx context.Context, id, format string, r models.TimeRange, w io.Writer) error {
	if err := d.adapter.Export(ctx, id, format, r, w); err != nil {
		return fmt.Errorf("export %s as %s: %w", id, format, err)
	}
	return nil
}

func (d *clientDeviceService) OpenLiveTimeline(ctx context.Context, id string) (adapter.LiveStream, error) {
	stream, err := d.adapter.OpenLiveTimeline(ctx, id)
	if err != nil {
		return nil, err
	}
	return stream, nil
}
