package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
)

// APIError is a non-2xx answer from the economy API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// APIClient handles communication with the SpinEconomy API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: APIRequestTimeout,
		},
		APIKey:     apiKey,
		retryDelay: APIRetryDelay,
	}
}

// doRequest performs an HTTP request with exponential backoff. GETs are
// retried on transport failures and 5xx answers. Other methods change
// balances, so they are only retried when the connection was never made.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= APIMaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			if method != http.MethodGet && !isDialError(err) {
				return nil, fmt.Errorf("request not retried: %w", err)
			}
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < http.StatusInternalServerError || method != http.MethodGet {
			return resp, nil
		}

		lastErr = decodeAPIError(resp)
		resp.Body.Close()
		slog.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// isDialError reports whether the request failed before a connection existed.
func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// call performs a request and decodes a 2xx body into out.
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
}

func accountPath(userID, suffix string) string {
	return "/api/v1/accounts/" + url.PathEscape(userID) + suffix
}

// InventoryResponse is the grouped role inventory of an account
type InventoryResponse struct {
	UserID     string                     `json:"user_id"`
	Categories []domain.InventoryCategory `json:"categories"`
}

// GetProfile retrieves an account's profile
func (c *APIClient) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.call(ctx, http.MethodGet, accountPath(userID, ""), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetInventory retrieves the roles an account has won
func (c *APIClient) GetInventory(ctx context.Context, userID string) (*InventoryResponse, error) {
	var inv InventoryResponse
	if err := c.call(ctx, http.MethodGet, accountPath(userID, "/inventory"), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GrantActivity reports chat or voice activity
func (c *APIClient) GrantActivity(ctx context.Context, userID string, source domain.ActivitySource) (*economy.ActivityResult, error) {
	var result economy.ActivityResult
	body := map[string]string{"source": string(source)}
	if err := c.call(ctx, http.MethodPost, accountPath(userID, "/activity"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClaimDaily claims the daily reward
func (c *APIClient) ClaimDaily(ctx context.Context, userID string) (*economy.DailyResult, error) {
	var result economy.DailyResult
	if err := c.call(ctx, http.MethodPost, accountPath(userID, "/daily"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DailyStatus reports whether the daily reward is ready
func (c *APIClient) DailyStatus(ctx context.Context, userID string) (*economy.DailyStatus, error) {
	var status economy.DailyStatus
	if err := c.call(ctx, http.MethodGet, accountPath(userID, "/daily"), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Purchase buys a shop item
func (c *APIClient) Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error) {
	var result domain.PurchaseResult
	body := map[string]string{"item_id": itemID}
	if err := c.call(ctx, http.MethodPost, accountPath(userID, "/purchase"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Spin draws a batch of count rewards
func (c *APIClient) Spin(ctx context.Context, userID string, count int) (*economy.SpinResult, error) {
	var result economy.SpinResult
	body := map[string]int{"count": count}
	if err := c.call(ctx, http.MethodPost, accountPath(userID, "/spin"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClaimRole confirms the account owns roleID
func (c *APIClient) ClaimRole(ctx context.Context, userID, roleID string) (*domain.RoleClaim, error) {
	var claim domain.RoleClaim
	path := accountPath(userID, "/roles/"+url.PathEscape(roleID)+"/claim")
	if err := c.call(ctx, http.MethodPost, path, nil, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetRewardPreview retrieves spinner odds and batch prices
func (c *APIClient) GetRewardPreview(ctx context.Context) (*economy.Preview, error) {
	var preview economy.Preview
	if err := c.call(ctx, http.MethodGet, "/api/v1/catalog/rewards", nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// ListShop retrieves the shop items
func (c *APIClient) ListShop(ctx context.Context) ([]domain.ShopItem, error) {
	var resp struct {
		Items []domain.ShopItem `json:"items"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/v1/catalog/shop", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddCatalogItem authors a shop item or spinner role
func (c *APIClient) AddCatalogItem(ctx context.Context, req shop.AddItemRequest) (*shop.AddItemResult, error) {
	var result shop.AddItemResult
	if err := c.call(ctx, http.MethodPost, "/api/v1/admin/catalog/items", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StartBlackjack deals a new round
func (c *APIClient) StartBlackjack(ctx context.Context, userID string) (*domain.BlackjackView, error) {
	var view domain.BlackjackView
	body := map[string]string{"user_id": userID}
	if err := c.call(ctx, http.MethodPost, "/api/v1/games/blackjack", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// BlackjackHit draws a card
func (c *APIClient) BlackjackHit(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	return c.blackjackMove(ctx, userID, gameID, "hit")
}

// BlackjackStand ends the player's turn
func (c *APIClient) BlackjackStand(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	return c.blackjackMove(ctx, userID, gameID, "stand")
}

func (c *APIClient) blackjackMove(ctx context.Context, userID, gameID, move string) (*domain.BlackjackView, error) {
	var view domain.BlackjackView
	body := map[string]string{"user_id": userID}
	path := "/api/v1/games/blackjack/" + url.PathEscape(gameID) + "/" + move
	if err := c.call(ctx, http.MethodPost, path, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// PlayRoulette places one bet
func (c *APIClient) PlayRoulette(ctx context.Context, userID string, bet domain.RouletteBet, amount int) (*domain.RouletteResult, error) {
	var result domain.RouletteResult
	body := map[string]interface{}{
		"user_id":  userID,
		"bet_type": bet,
		"amount":   amount,
	}
	if err := c.call(ctx, http.MethodPost, "/api/v1/games/roulette", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Healthz reports whether the API answers its liveness probe
func (c *APIClient) Healthz(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
