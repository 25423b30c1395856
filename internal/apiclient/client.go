// Package apiclient talks to a running labor API on behalf of shopctl.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"carrozzeria/internal/adapter/http/dto/request"
	response "carrozzeria/internal/adapter/http/dto/response"
	"carrozzeria/pkg"

	"golang.org/x/oauth2"
)

const (
	dashboardPath = "/v1/dashboard"
	employeesPath = "/v1/employees"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL (e.g. http://localhost:8080). A
// non-empty token is sent as "Authorization: Bearer <token>".
func NewClient(ctx context.Context, baseURL, token string, timeout time.Duration) *Client {
	httpClient := &http.Client{}
	if token = strings.TrimSpace(token); token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
	}
	httpClient.Timeout = timeout
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) Snapshot(ctx context.Context) (response.DashboardResponse, error) {
	var snap response.DashboardResponse
	if err := c.do(ctx, http.MethodGet, dashboardPath, nil, http.StatusOK, &snap); err != nil {
		return response.DashboardResponse{}, err
	}
	return snap, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req request.CreateEmployeeRequest) (response.EmployeeResponse, error) {
	var created response.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, employeesPath, req, http.StatusCreated, &created); err != nil {
		return response.EmployeeResponse{}, err
	}
	return created, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != want {
		var apiErr pkg.HTTPError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Code != "" {
			return fmt.Errorf("%s %s: %d %s: %s", method, path, resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
