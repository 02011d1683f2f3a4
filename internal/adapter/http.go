package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/gmc-client/internal/config"
	"github.com/MKhiriev/gmc-client/internal/logger"
	"github.com/MKhiriev/gmc-client/internal/utils"
	"github.com/MKhiriev/gmc-client/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	baseURL string
	apiPath string
	timeout time.Duration
	tokens  TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty/WebSocket implementation of
// [ServerAdapter]. The base URL is normalised and must carry a scheme and a
// host; the API path is prepended to every call.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
				Msg("api call")
			return nil
		})

	return &httpServerAdapter{
		client:  client,
		baseURL: baseURL,
		apiPath: "/" + strings.Trim(adapterCfg.APIPath, "/"),
		timeout: adapterCfg.RequestTimeout,
		tokens:  tokens,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.Scheme + "://" + u.Host, nil
}

// authedRequest starts a request carrying the current token, if any.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	if h.tokens == nil {
		return req, nil
	}

	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.SetHeader("Authorization", token)
	}
	return req, nil
}

func (h *httpServerAdapter) path(p string) string {
	return h.apiPath + p
}

// send executes method on path with an optional JSON body.
func (h *httpServerAdapter) send(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	return req.Execute(method, h.path(path))
}

// Do implements [ServerAdapter].
func (h *httpServerAdapter) Do(ctx context.Context, r models.Request) (*resty.Response, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if r.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(r.Body)
	}
	for k, v := range r.Headers {
		req.SetHeader(k, v)
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := req.Execute(method, h.path(r.Path))
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, r.Path, err)
	}
	return resp, nil
}

func (h *httpServerAdapter) authCall(ctx context.Context, method, path string, body any, what string) (models.LoginResult, error) {
	resp, err := h.send(ctx, method, path, body)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapAuthError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var result models.LoginResult
	if err = decodeBody(resp, &result, what); err != nil {
		return models.LoginResult{}, err
	}
	if result.Token == "" {
		return models.LoginResult{}, fmt.Errorf("%s: %w", what, ErrMissingToken)
	}
	return result, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	return h.authCall(ctx, http.MethodPost, "/auth/login", req, "login")
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	return h.authCall(ctx, http.MethodPost, "/auth/register", req, "register")
}

// MfaSubmit implements [ServerAdapter].
func (h *httpServerAdapter) MfaSubmit(ctx context.Context, code models.MfaCode) (models.LoginResult, error) {
	return h.authCall(ctx, http.MethodPost, "/auth/mfa", code, "mfa submit")
}

// call executes a request, maps non-2xx to [ErrRequestFailed] and decodes
// the body into out when out is non-nil.
func (h *httpServerAdapter) call(ctx context.Context, method, path string, body, out any, what string) (*resty.Response, error) {
	resp, err := h.send(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}
	if out != nil {
		if err = decodeBody(resp, out, what); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// MfaStartSetup implements [ServerAdapter].
func (h *httpServerAdapter) MfaStartSetup(ctx context.Context) (models.MfaStartSetupResponse, error) {
	var out models.MfaStartSetupResponse
	_, err := h.call(ctx, http.MethodPut, "/auth/mfa", struct{}{}, &out, "mfa start setup")
	return out, err
}

// MfaFinishSetup implements [ServerAdapter].
func (h *httpServerAdapter) MfaFinishSetup(ctx context.Context, code models.MfaCode) (models.Confirmation, error) {
	return h.confirm(ctx, http.MethodPut, "/auth/mfa", code, "mfa finish setup")
}

// MfaDisable implements [ServerAdapter].
func (h *httpServerAdapter) MfaDisable(ctx context.Context, code models.MfaCode) (models.Confirmation, error) {
	return h.confirm(ctx, http.MethodDelete, "/auth/mfa", code, "mfa disable")
}

// UpdateMe implements [ServerAdapter].
func (h *httpServerAdapter) UpdateMe(ctx context.Context, params models.UserUpdateParams) (models.Confirmation, error) {
	return h.confirm(ctx, http.MethodPut, "/user/me", params, "update me")
}

// DeleteMe implements [ServerAdapter].
func (h *httpServerAdapter) DeleteMe(ctx context.Context, req models.DeleteMeRequest) (models.Confirmation, error) {
	return h.confirm(ctx, http.MethodDelete, "/user/me", req, "delete me")
}

func (h *httpServerAdapter) confirm(ctx context.Context, method, path string, body any, what string) (models.Confirmation, error) {
	out := models.Confirmation{}
	if _, err := h.call(ctx, method, path, body, &out, what); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	_, err := h.call(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, &out, "get user")
	return out, err
}

// GetDevice implements [ServerAdapter].
func (h *httpServerAdapter) GetDevice(ctx context.Context, id string) (models.Device, error) {
	var out models.Device
	_, err := h.call(ctx, http.MethodGet, devicePath(id), nil, &out, "get device")
	return out, err
}

// GetDeviceStats implements [ServerAdapter].
func (h *httpServerAdapter) GetDeviceStats(ctx context.Context, id, field string, r models.TimeRange) (*models.DeviceStats, error) {
	path := query(nil).addRange(r).appendTo(devicePath(id, "stats", field))

	resp, err := h.call(ctx, http.MethodGet, path, nil, nil, "get device stats")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	var out models.DeviceStats
	if err = decodeBody(resp, &out, "get device stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTimeline implements [ServerAdapter].
func (h *httpServerAdapter) GetTimeline(ctx context.Context, id string, q models.TimelineQuery) ([]models.Record, error) {
	var out []models.Record
	path := timelineQuery(q).appendTo(devicePath(id, "timeline"))
	_, err := h.call(ctx, http.MethodGet, path, nil, &out, "get timeline")
	return out, err
}

// GetCalendar implements [ServerAdapter].
func (h *httpServerAdapter) GetCalendar(ctx context.Context, id string) (models.DeviceCalendar, error) {
	var out models.DeviceCalendar
	_, err := h.call(ctx, http.MethodGet, devicePath(id, "calendar"), nil, &out, "get calendar")
	return out, err
}

// GetMap implements [ServerAdapter].
func (h *httpServerAdapter) GetMap(ctx context.Context, rect models.MapRect) ([]models.MapDevice, error) {
	encoded, err := json.Marshal(rect)
	if err != nil {
		return nil, fmt.Errorf("encode map rect: %w", err)
	}

	var out []models.MapDevice
	_, err = h.call(ctx, http.MethodGet, "/map/"+url.PathEscape(string(encoded)), nil, &out, "get map")
	return out, err
}

// CreateDevice implements [ServerAdapter].
func (h *httpServerAdapter) CreateDevice(ctx context.Context, req models.CreateDeviceRequest) (models.Device, error) {
	var out models.Device
	_, err := h.call(ctx, http.MethodPost, "/device", req, &out, "create device")
	return out, err
}

// UpdateDevice implements [ServerAdapter].
func (h *httpServerAdapter) UpdateDevice(ctx context.Context, id string, params models.DeviceUpdateParams) (models.DeviceUpdate, error) {
	var out models.DeviceUpdate
	_, err := h.call(ctx, http.MethodPut, devicePath(id), params, &out, "update device")
	return out, err
}

// DisableDevice implements [ServerAdapter].
func (h *httpServerAdapter) DisableDevice(ctx context.Context, id string, req models.DisableDeviceRequest) (models.Confirmation, error) {
	return h.confirm(ctx, http.MethodDelete, devicePath(id), req, "disable device")
}

// ImportDevice implements [ServerAdapter].
func (h *httpServerAdapter) ImportDevice(ctx context.Context, platform string, options map[string]any) (models.ImportStarted, error) {
	if options == nil {
		options = map[string]any{}
	}

	var out models.ImportStarted
	_, err := h.call(ctx, http.MethodPost, "/import/"+url.PathEscape(platform), options, &out, "import device")
	return out, err
}

// GetInstanceInfo implements [ServerAdapter].
func (h *httpServerAdapter) GetInstanceInfo(ctx context.Context) (models.InstanceInfo, error) {
	var out models.InstanceInfo
	_, err := h.call(ctx, http.MethodGet, "/instance/info", nil, &out, "get instance info")
	return out, err
}

// GetCaptcha implements [ServerAdapter].
func (h *httpServerAdapter) GetCaptcha(ctx context.Context) (models.Captcha, error) {
	var out models.Captcha
	_, err := h.call(ctx, http.MethodGet, "/captcha", nil, &out, "get captcha")
	return out, err
}

// GetCaptchaImage implements [ServerAdapter].
func (h *httpServerAdapter) GetCaptchaImage(ctx context.Context, id string, w io.Writer) error {
	return h.download(ctx, query(nil).add("id", id).appendTo("/captcha"), w, "get captcha image")
}

func exportPath(id, format string, r models.TimeRange) string {
	var q query
	if r.Complete() {
		q = q.addRange(r)
	}
	return q.appendTo(devicePath(id, "export", format))
}

// ExportURL implements [ServerAdapter].
func (h *httpServerAdapter) ExportURL(id, format string, r models.TimeRange) string {
	return h.baseURL + h.path(exportPath(id, format, r))
}

// Export implements [ServerAdapter].
func (h *httpServerAdapter) Export(ctx context.Context, id, format string, r models.TimeRange, w io.Writer) error {
	return h.download(ctx, exportPath(id, format, r), w, "export")
}

// download streams a GET response body into w without buffering it.
func (h *httpServerAdapter) download(ctx context.Context, path string, w io.Writer, what string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetDoNotParseResponse(true).Get(h.path(path))
	if err != nil {
		return fmt.Errorf("%s request: %w", what, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !isSuccess(resp.StatusCode()) {
		payload, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		return requestFailed(resp.StatusCode(), payload)
	}

	if _, err = io.Copy(w, body); err != nil {
		return fmt.Errorf("%s copy body: %w", what, err)
	}
	return nil
}
