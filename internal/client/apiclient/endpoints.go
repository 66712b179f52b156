package apiclient

import (
	"context"
	"net/http"
)

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterResponse is passed through without validation; fields of the wrong
// type are left zero. Raw holds the whole payload.
type RegisterResponse struct {
	Success bool
	Message string
	Raw     map[string]any
}

// HealthResponse is an arbitrary object, commonly {status, message, timestamp}.
type HealthResponse struct {
	Status    string
	Message   string
	Timestamp string
	Raw       map[string]any
}

// Login posts the credentials without an Authorization header and
// normalizes the response.
func (c *Client) Login(ctx context.Context, payload LoginPayload) (*LoginResponse, error) {
	raw, err := c.Do(ctx, LoginEndpoint, RequestOptions{Method: http.MethodPost, Body: payload, SkipAuth: true})
	if err != nil {
		return nil, err
	}

	resp, issues, err := NormalizeLoginResponse(raw)
	if err != nil {
		c.log.Warn(ctx, "login response rejected", "error", err)
		return nil, err
	}
	for _, issue := range issues {
		c.log.Debug(ctx, "login response field dropped", "field", issue.Field, "reason", issue.Reason)
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*RegisterResponse, error) {
	raw, err := c.Do(ctx, RegisterEndpoint, RequestOptions{Method: http.MethodPost, Body: payload, SkipAuth: true})
	if err != nil {
		return nil, err
	}

	resp := &RegisterResponse{}
	if obj, ok := raw.(map[string]any); ok {
		resp.Raw = obj
		resp.Success, _ = obj["success"].(bool)
		resp.Message, _ = obj["message"].(string)
	}
	return resp, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	raw, err := c.Do(ctx, HealthEndpoint, RequestOptions{Method: http.MethodGet, SkipAuth: true})
	if err != nil {
		return nil, err
	}

	resp := &HealthResponse{}
	if obj, ok := raw.(map[string]any); ok {
		resp.Raw = obj
		resp.Status, _ = obj["status"].(string)
		resp.Message, _ = obj["message"].(string)
		resp.Timestamp, _ = obj["timestamp"].(string)
	}
	return resp, nil
}
