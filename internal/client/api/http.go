package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"brewdesk/internal/common"

	"github.com/google/uuid"
)

// TokenSource supplies the current credential token, "" when logged out.
// The session provides it; the client never stores credentials itself.
type TokenSource func() string

var _ Client = (*HTTPClient)(nil)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

// do shapes one JSON request/response exchange. A nil out discards the
// body. Transport failures map to common.ErrUnavailable; 401 and 404 map
// to their sentinels; other non-2xx statuses surface the backend message.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) mapError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/register", req, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/forgot-password", req, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResult, error) {
	var out VerifyOTPResult
	if err := c.do(ctx, http.MethodPost, "/v1/auth/verify-otp", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SetPassword(ctx context.Context, req SetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/users/set-password", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", struct{}{}, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/v1/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/v1/admin/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/v1/admin/users/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/v1/admin/users/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := c.do(ctx, http.MethodGet, "/v1/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error) {
	var out MenuItem
	if err := c.do(ctx, http.MethodPost, "/v1/menu", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdjustStock(ctx context.Context, id string, req StockAdjustment) (*MenuItem, error) {
	var out MenuItem
	if err := c.do(ctx, http.MethodPatch, "/v1/menu/"+url.PathEscape(id)+"/stock", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context, tenantID, userID string) ([]Order, error) {
	var out []Order
	path := fmt.Sprintf("/v1/%s/users/%s/orders", url.PathEscape(tenantID), url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, tenantID, userID, orderID string, req UpdateOrderStatusRequest) error {
	path := fmt.Sprintf("/v1/%s/users/%s/orders/%s", url.PathEscape(tenantID), url.PathEscape(userID), url.PathEscape(orderID))
	return c.do(ctx, http.MethodPatch, path, req, nil)
}
