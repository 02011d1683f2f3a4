package store

import "github.com/MKhiriev/gmc-client/internal/config"

func configStorage(backend, dsn string) config.ClientStorage {
	return config.ClientStorage{Session: config.ClientSessionStorage{Backend: backend, DSN: dsn}}
}
