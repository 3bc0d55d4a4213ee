package endor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// SearchUsage finds every project consuming the given dependency at its
// exact version, walking all result pages under the given namespace.
//
// Pagination is strictly sequential: one cursor is threaded between
// requests, and each page's cursor comes from the prior response. The walk
// ends when the server omits the next-page cursor, or on the first
// transport or non-2xx failure. On failure the records accumulated so far
// are returned alongside the error; keeping partial results is deliberate.
// There are no retries.
func (c *Client) SearchUsage(ctx context.Context, namespace string, ident models.DependencyIdentifier) ([]models.UsageRecord, error) {
	query := BuildUsageQuery(ident)

	var records []models.UsageRecord
	pageToken := ""
	for page := 1; ; page++ {
		query.SetPageToken(pageToken)

		objects, next, err := c.fetchPage(ctx, namespace, query)
		if err != nil {
			c.logger.Error("dependency search failed",
				"dependency", ident.Label(),
				"page", page,
				"error", err)
			return records, err
		}
		c.logger.Debug("received result page",
			"dependency", ident.Label(),
			"page", page,
			"objects", len(objects))

		records = append(records, NormalizeObjects(namespace, objects)...)

		if next == "" {
			return records, nil
		}
		pageToken = next
	}
}

// fetchPage issues one query request and extracts the object list and
// next-page cursor from the response envelope.
func (c *Client) fetchPage(ctx context.Context, namespace string, query *QueryRequest) ([]RawObject, string, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/namespaces/%s/queries", c.baseURL, namespace)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Request-Timeout", c.timeoutHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("query request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The response body usually names the rejected filter or mask;
		// surface it for manual re-runs.
		respBody, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("query returned status %d: %s", resp.StatusCode, respBody)
	}

	var envelope queryResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, "", fmt.Errorf("failed to decode query response: %w", err)
	}

	list := envelope.Spec.QueryResponse.List
	return list.Objects, list.Response.NextPageToken, nil
}
