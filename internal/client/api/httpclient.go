package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/craftedwonders/storefront/internal/client/models"
)

// HTTPClient implements Client over plain net/http. A bearer token set via
// SetToken is attached to every subsequent request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: baseURL, http: &http.Client{}}
}

// SetToken installs the bearer token used for authenticated calls.
// An empty token clears it.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one JSON round trip. A non-nil body is marshalled into the
// request; a non-nil out receives the decoded response. Transport failures
// map to ErrUnavailable, auth failures to ErrUnauthorized, missing records
// to ErrNotFound and undecodable bodies to ErrMalformedResponse, so callers
// can branch with errors.Is.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	req := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users/register", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := map[string]string{"email": email, "password": password}

	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/login", req, &user); err != nil {
		return nil, err
	}
	c.token = user.Token
	return &user, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id, owner string) error {
	path := fmt.Sprintf("/api/products/%s/%s", url.PathEscape(id), url.PathEscape(owner))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) Cart(ctx context.Context, email string) ([]models.LineItem, error) {
	var resp struct {
		Items []models.LineItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) SaveCart(ctx context.Context, email string, items []models.LineItem) error {
	if items == nil {
		items = []models.LineItem{}
	}
	req := struct {
		UserEmail string            `json:"userEmail"`
		Items     []models.LineItem `json:"items"`
	}{UserEmail: email, Items: items}

	return c.do(ctx, http.MethodPost, "/api/cart/save", req, nil)
}
