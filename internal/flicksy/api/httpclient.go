package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// HTTPClient talks JSON over HTTP(S) to a Flicksy backend. All endpoints
// live under the /api prefix. The bearer credential is read from the
// CredentialSource on every request, so credential changes take effect
// without rebuilding the client.
type HTTPClient struct {
	base   string
	http   *http.Client
	source CredentialSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at base
// (e.g. "http://127.0.0.1:8080"). A nil httpClient falls back to
// http.DefaultClient; a nil source leaves every request unauthenticated.
func NewHTTPClient(base string, httpClient *http.Client, source CredentialSource) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{base: base, http: httpClient, source: source}
}

// do issues one request and decodes the reply into out (when non-nil).
// Transport failures wrap ErrUnavailable; non-2xx replies become *APIError
// with the backend "detail" string when one is present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/api"+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.source != nil {
		if token := c.source.Credential(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var reason struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&reason); err == nil {
			apiErr.Detail = reason.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func pageQuery(limit, skip int) string {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	var out models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return models.AuthResult{}, err
	}
	return out, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.AuthResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return models.AuthResult{}, err
	}
	return out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *HTTPClient) Profile(ctx context.Context, username string) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *HTTPClient) Feed(ctx context.Context, limit, skip int) ([]models.Post, error) {
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts"+pageQuery(limit, skip), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, content string) (models.Post, error) {
	body := map[string]string{"content": content}
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", body, &out); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, postID string) (bool, error) {
	var out struct {
		Liked   bool   `json:"liked"`
		Message string `json:"message"`
	}
	path := "/posts/" + url.PathEscape(postID) + "/like"
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}

func (c *HTTPClient) Comments(ctx context.Context, postID string, limit, skip int) ([]models.Comment, error) {
	var out []models.Comment
	path := "/posts/" + url.PathEscape(postID) + "/comments" + pageQuery(limit, skip)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, postID, content string) (models.Comment, error) {
	body := map[string]string{"content": content}
	var out models.Comment
	path := "/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return models.Comment{}, err
	}
	return out, nil
}

func (c *HTTPClient) Search(ctx context.Context, query string, limit int) (models.SearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out models.SearchResults
	if err := c.do(ctx, http.MethodGet, "/search?"+q.Encode(), nil, &out); err != nil {
		return models.SearchResults{}, err
	}
	return out, nil
}

func (c *HTTPClient) Trending(ctx context.Context, limit int) ([]models.TrendingTopic, error) {
	var out []models.TrendingTopic
	if err := c.do(ctx, http.MethodGet, "/trending"+pageQuery(limit, 0), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) RequestVerification(ctx context.Context, reason string) (models.VerificationRequest, error) {
	body := map[string]string{"reason": reason}
	var out models.VerificationRequest
	if err := c.do(ctx, http.MethodPost, "/verification/requests", body, &out); err != nil {
		return models.VerificationRequest{}, err
	}
	return out, nil
}

func (c *HTTPClient) MyVerification(ctx context.Context) (models.VerificationRequest, error) {
	var out models.VerificationRequest
	if err := c.do(ctx, http.MethodGet, "/verification/requests/me", nil, &out); err != nil {
		return models.VerificationRequest{}, err
	}
	return out, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return models.AdminStats{}, err
	}
	return out, nil
}

func (c *HTTPClient) AdminVerificationRequests(ctx context.Context, status string) ([]models.VerificationRequest, error) {
	path := "/admin/verification/requests"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []models.VerificationRequest
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ReviewVerification(ctx context.Context, id string, approve bool, note string) (models.VerificationRequest, error) {
	body := map[string]any{"approve": approve, "note": note}
	var out models.VerificationRequest
	path := "/admin/verification/requests/" + url.PathEscape(id) + "/review"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return models.VerificationRequest{}, err
	}
	return out, nil
}
