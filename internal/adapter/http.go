package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pro-network/internal/config"
	"github.com/MKhiriev/go-pro-network/internal/logger"
	"github.com/MKhiriev/go-pro-network/internal/metrics"
	"github.com/MKhiriev/go-pro-network/internal/utils"
	"github.com/MKhiriev/go-pro-network/models"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// Endpoint labels used for logging and metrics.
const (
	endpointSignup           = "auth.signup"
	endpointLogin            = "auth.login"
	endpointMe               = "auth.me"
	endpointMyProfile        = "profile.me"
	endpointAllProfiles      = "profile.all"
	endpointProfile          = "profile.get"
	endpointUpdateProfile    = "profile.update"
	endpointCreateExperience = "experience.create"
	endpointUpdateExperience = "experience.update"
	endpointDeleteExperience = "experience.delete"
	endpointCreateEducation  = "education.create"
	endpointUpdateEducation  = "education.update"
	endpointDeleteEducation  = "education.delete"
	endpointCreateSkill      = "skill.create"
	endpointDeleteSkill      = "skill.delete"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	tokens         TokenSource
	onUnauthorized func()
	recorder       metrics.RequestRecorder
	requestIDs     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
//
// tokens is consulted on every request. onUnauthorized runs synchronously
// when a 401 arrives for a request sent with the token that is still current;
// a 401 for a token that has since been replaced is ignored so a late
// response cannot end a newer session. recorder may be nil.
func NewHTTPServerAdapter(
	cfg config.ClientAdapter,
	tokens TokenSource,
	onUnauthorized func(),
	recorder metrics.RequestRecorder,
	log *logger.Logger,
) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if onUnauthorized == nil {
		onUnauthorized = func() {}
	}

	h := &httpServerAdapter{
		client:         utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		recorder:       recorder,
		requestIDs:     utils.NewUUIDGenerator(),
		logger:         log,
	}

	h.client.
		OnBeforeRequest(h.injectHeaders).
		OnAfterResponse(h.interceptUnauthorized)

	return h, nil
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
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) injectHeaders(_ *resty.Client, req *resty.Request) error {
	if token := h.currentToken(); token != "" {
		req.SetHeader(headerAuthorization, utils.BearerHeader(token))
	}
	req.SetHeader(headerRequestID, h.requestIDs.Generate())
	return nil
}

func (h *httpServerAdapter) interceptUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	sent := resp.Request.Header.Get(headerAuthorization)
	current := ""
	if token := h.currentToken(); token != "" {
		current = utils.BearerHeader(token)
	}

	log := h.logger.With().
		Str("func", "httpServerAdapter.interceptUnauthorized").
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(headerRequestID)).
		Logger()

	if sent != current {
		log.Warn().Msg("401 for a replaced token, session kept")
		return nil
	}

	log.Info().Msg("401 received, ending session")
	h.recorder.RecordUnauthorized()
	h.onUnauthorized()
	return nil
}

func (h *httpServerAdapter) currentToken() string {
	if h.tokens == nil {
		return ""
	}
	return h.tokens.Token()
}

// do sends one request and decodes a 2xx body into out (when non-nil).
func (h *httpServerAdapter) do(ctx context.Context, endpoint, method, path string, body, out any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.recorder.RecordTransportError(endpoint)
		h.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("request failed")
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	h.recorder.RecordRequest(endpoint, resp.StatusCode(), resp.Time())

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("endpoint", endpoint).Int("status", resp.StatusCode()).Msg("request rejected")
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.do(ctx, endpointSignup, http.MethodPost, "/auth/signup", req, &out)
	return out, err
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.do(ctx, endpointLogin, http.MethodPost, "/auth/login", creds, &out)
	return out, err
}

// Me returns [ErrEmptyUser] when the body carries no user id, so a
// malformed answer is never adopted as a verified identity.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var out models.MeResponse
	if err := h.do(ctx, endpointMe, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return models.User{}, err
	}
	if out.User.ID == "" {
		return models.User{}, fmt.Errorf("decode %s response: %w", endpointMe, ErrEmptyUser)
	}
	return out.User, nil
}

func (h *httpServerAdapter) MyProfile(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	err := h.do(ctx, endpointMyProfile, http.MethodGet, "/profile/me", nil, &out)
	return out, err
}

func (h *httpServerAdapter) AllProfiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	err := h.do(ctx, endpointAllProfiles, http.MethodGet, "/profile/all", nil, &out)
	return out, err
}

func (h *httpServerAdapter) Profile(ctx context.Context, id string) (models.Profile, error) {
	var out models.Profile
	err := h.do(ctx, endpointProfile, http.MethodGet, "/profile/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var out models.Profile
	err := h.do(ctx, endpointUpdateProfile, http.MethodPatch, "/profile/me", update, &out)
	return out, err
}

func (h *httpServerAdapter) CreateExperience(ctx context.Context, exp models.Experience) (models.Experience, error) {
	var out models.Experience
	err := h.do(ctx, endpointCreateExperience, http.MethodPost, "/experience", exp, &out)
	return out, err
}

func (h *httpServerAdapter) UpdateExperience(ctx context.Context, id string, exp models.Experience) (models.Experience, error) {
	var out models.Experience
	err := h.do(ctx, endpointUpdateExperience, http.MethodPatch, "/experience/"+url.PathEscape(id), exp, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteExperience(ctx context.Context, id string) error {
	return h.do(ctx, endpointDeleteExperience, http.MethodDelete, "/experience/"+url.PathEscape(id), nil, nil)
}

func (h *httpServerAdapter) CreateEducation(ctx context.Context, edu models.Education) (models.Education, error) {
	var out models.Education
	err := h.do(ctx, endpointCreateEducation, http.MethodPost, "/education", edu, &out)
	return out, err
}

func (h *httpServerAdapter) UpdateEducation(ctx context.Context, id string, edu models.Education) (models.Education, error) {
	var out models.Education
	err := h.do(ctx, endpointUpdateEducation, http.MethodPatch, "/education/"+url.PathEscape(id), edu, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteEducation(ctx context.Context, id string) error {
	return h.do(ctx, endpointDeleteEducation, http.MethodDelete, "/education/"+url.PathEscape(id), nil, nil)
}

func (h *httpServerAdapter) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	var out models.Skill
	err := h.do(ctx, endpointCreateSkill, http.MethodPost, "/skill", skill, &out)
	return out, err
}

func (h *httpServerAdapter) DeleteSkill(ctx context.Context, id string) error {
	return h.do(ctx, endpointDeleteSkill, http.MethodDelete, "/skill/"+url.PathEscape(id), nil, nil)
}
