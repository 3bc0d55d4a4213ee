package endor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type authRequest struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges the API key and secret for a bearer token. Every
// failure here is a precondition failure for the run: the caller should
// abort before issuing any query.
func (c *Client) Authenticate(ctx context.Context, key, secret string) error {
	body, err := json.Marshal(authRequest{Key: key, Secret: secret})
	if err != nil {
		return fmt.Errorf("failed to encode auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/api-key", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Request-Timeout", c.timeoutHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to get token: status %d: %s", resp.StatusCode, respBody)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if auth.Token == "" {
		return fmt.Errorf("auth response contained no token")
	}

	c.token = auth.Token
	return nil
}
