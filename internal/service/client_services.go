package service

import (
	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/internal/events"
	"github.com/MKhiriev/gmc-client/internal/session"
)

type ClientServices struct {
	AuthService     ClientAuthService
	UserService     ClientUserService
	DeviceService   ClientDeviceService
	InstanceService ClientInstanceService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions *session.Manager, bus *events.Bus) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, sessions, bus),
		UserService:     NewClientUserService(serverAdapter, sessions),
		DeviceService:   NewClientDeviceService(serverAdapter),
		InstanceService: NewClientInstanceService(serverAdapter),
	}
}
