package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/utils"
)

// APIError is returned when the backend answers with a non-success status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Title      string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Title
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return ErrOperationFailed
}

// Unauthorized reports whether the backend rejected the credentials.
func (e *APIError) Unauthorized() bool {
	return e.Title == "Unauthorized" || e.StatusCode == http.StatusUnauthorized
}

// APIClient talks to the ordering backend.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewAPIClientWithHTTP is used when the caller owns the http.Client (tests, custom transports).
func NewAPIClientWithHTTP(baseURL string, httpClient *http.Client) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (ac *APIClient) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrOperationFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, ac.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrOperationFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ac.httpClient.Do(req)
	if err != nil {
		ac.logFailure(method, path, 0, err)
		return fmt.Errorf("%w: %s %s: %v", ErrOperationFailed, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		ac.logFailure(method, path, resp.StatusCode, err)
		return fmt.Errorf("%w: reading response: %v", ErrOperationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var envelope utils.ErrorBody
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Title = envelope.Title
			apiErr.Message = envelope.Message
		}
		ac.logFailure(method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		ac.logFailure(method, path, resp.StatusCode, err)
		return fmt.Errorf("%w: decoding %s %s: %v", ErrOperationFailed, method, path, err)
	}
	return nil
}

func (ac *APIClient) logFailure(method, path string, status int, err error) {
	utils.ErrorLogger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": status,
	}).Error(err)
}

func (ac *APIClient) CurrentUser(ctx context.Context, token string) (models.CurrentUser, error) {
	var user models.CurrentUser
	err := ac.do(ctx, http.MethodGet, "/api/users/current", token, nil, &user)
	return user, err
}

// Login exchanges email and password for an access token.
func (ac *APIClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := ac.do(ctx, http.MethodPost, "/api/users/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: login response without accessToken", ErrOperationFailed)
	}
	return resp.AccessToken, nil
}

func (ac *APIClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return ac.do(ctx, http.MethodPost, "/api/users/register", "", req, nil)
}

func (ac *APIClient) ListMenus(ctx context.Context, token string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := ac.do(ctx, http.MethodGet, "/api/menus", token, nil, &items)
	return items, err
}

func (ac *APIClient) CreateMenu(ctx context.Context, token string, item models.MenuItem) (models.MenuItem, error) {
	var created models.MenuItem
	err := ac.do(ctx, http.MethodPost, "/api/menus", token, item, &created)
	return created, err
}

func (ac *APIClient) UpdateMenu(ctx context.Context, token string, item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		return models.MenuItem{}, fmt.Errorf("%w: menu item without id", ErrOperationFailed)
	}
	var updated models.MenuItem
	err := ac.do(ctx, http.MethodPut, "/api/menus/"+url.PathEscape(item.ID), token, item, &updated)
	return updated, err
}

func (ac *APIClient) DeleteMenu(ctx context.Context, token, id string) error {
	return ac.do(ctx, http.MethodDelete, "/api/menus/"+url.PathEscape(id), token, nil, nil)
}

func (ac *APIClient) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	err := ac.do(ctx, http.MethodGet, "/api/orders", token, nil, &orders)
	return orders, err
}

func (ac *APIClient) CreateOrder(ctx context.Context, token string, req models.OrderRequest) (models.Order, error) {
	var order models.Order
	err := ac.do(ctx, http.MethodPost, "/api/orders", token, req, &order)
	return order, err
}

func (ac *APIClient) UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	err := ac.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), token, models.OrderStatusUpdate{Status: status}, &order)
	return order, err
}

// IsUnauthorized reports whether err is a backend rejection of the credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
