// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/models"
)

// LiveTimeline is the gorilla/websocket implementation of [LiveStream]. It
// has no reconnect logic: once the socket drops, Recv returns an error, the
// stream closes itself and the caller decides whether to open a new one.
type LiveTimeline struct {
	conn   *websocket.Conn
	logger *logger.Logger

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

var _ LiveStream = (*LiveTimeline)(nil)

// liveURL derives the WebSocket URL from the HTTP base URL: https becomes
// wss, anything else ws.
func (h *httpServerAdapter) liveURL(id string) string {
	scheme, host, _ := strings.Cut(h.baseURL, "://")
	wsScheme := "ws"
	if scheme == "https" {
		wsScheme = "wss"
	}
	return wsScheme + "://" + host + h.path(devicePath(id, "live"))
}

// OpenLiveTimeline implements [ServerAdapter].
func (h *httpServerAdapter) OpenLiveTimeline(ctx context.Context, id string) (LiveStream, error) {
	header := http.Header{}
	if h.tokens != nil {
		token, err := h.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			header.Set("Authorization", token)
		}
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: h.timeout,
	}

	wsURL := h.liveURL(id)
	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
			return nil, fmt.Errorf("open live timeline: %w", requestFailed(resp.StatusCode, payload))
		}
		return nil, fmt.Errorf("open live timeline: %w", err)
	}

	h.logger.Debug().Str("device", id).Str("url", wsURL).Msg("live timeline opened")

	l := &LiveTimeline{
		conn:   conn,
		logger: h.logger,
		done:   make(chan struct{}),
	}

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				l.Close()
			case <-l.done:
			}
		}()
	}

	return l, nil
}

// Recv implements [LiveStream].
func (l *LiveTimeline) Recv() (models.Record, error) {
	_, data, err := l.conn.ReadMessage()
	if err != nil {
		eof := l.isClosed() || errors.Is(err, net.ErrClosed) ||
			websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)

		// read errors are terminal for a websocket connection; closing also
		// releases the context watcher
		l.Close()

		if eof {
			return models.Record{}, io.EOF
		}
		return models.Record{}, fmt.Errorf("read live record: %w", err)
	}

	var rec models.Record
	if err = json.Unmarshal(data, &rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return rec, nil
}

func (l *LiveTimeline) isClosed() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Close implements [LiveStream].
func (l *LiveTimeline) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)

		if err := l.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		); err != nil {
			l.logger.Debug().Err(err).Msg("live timeline: failed to send close message")
		}
		l.closeErr = l.conn.Close()
	})
	return l.closeErr
}
