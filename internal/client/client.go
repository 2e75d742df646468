// Package client calls a remote study service over the Connect JSON protocol.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/kioku/internal/server"
	"github.com/at-ishikawa/kioku/internal/srs"
)

// Error is an error returned by the study service.
type Error struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Retryable reports whether the call may succeed when sent again.
func (e *Error) Retryable() bool {
	switch e.Code {
	case "unavailable", "aborted", "resource_exhausted":
		return true
	}
	return e.StatusCode >= 500 && e.Code != "internal"
}

const defaultRetryDelay = 100 * time.Millisecond

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func New(baseURL string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
		retryDelay:       defaultRetryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// RateCard is sent once: a retried rating could be applied twice.
func (client *Client) RateCard(ctx context.Context, cardID string, rating srs.Rating, responseTime time.Duration) (server.RateCardResponse, error) {
	return call[server.RateCardResponse](ctx, client, server.RateCardProcedure, server.RateCardRequest{
		CardID:         cardID,
		Rating:         string(rating),
		ResponseTimeMs: responseTime.Milliseconds(),
	}, false)
}

func (client *Client) StartSession(ctx context.Context, deckID string) (server.StartSessionResponse, error) {
	return call[server.StartSessionResponse](ctx, client, server.StartSessionProcedure, server.StartSessionRequest{DeckID: deckID}, true)
}

func (client *Client) DeckDueCards(ctx context.Context, deckID string) ([]string, error) {
	res, err := call[server.GetDueCardsResponse](ctx, client, server.GetDueCardsProcedure, server.GetDueCardsRequest{DeckID: deckID}, true)
	return res.CardIDs, err
}

func (client *Client) SubjectDueCards(ctx context.Context, subjectID string) ([]string, error) {
	res, err := call[server.GetDueCardsResponse](ctx, client, server.GetDueCardsProcedure, server.GetDueCardsRequest{SubjectID: subjectID}, true)
	return res.CardIDs, err
}

func (client *Client) DeckStats(ctx context.Context, deckID string) (server.DeckProgress, error) {
	res, err := call[server.GetDeckStatsResponse](ctx, client, server.GetDeckStatsProcedure, server.GetDeckStatsRequest{DeckID: deckID}, true)
	return res.Deck, err
}

func (client *Client) Overview(ctx context.Context, subjectID string) (server.GetOverviewResponse, error) {
	return call[server.GetOverviewResponse](ctx, client, server.GetOverviewProcedure, server.GetOverviewRequest{SubjectID: subjectID}, true)
}

func call[Res any](ctx context.Context, client *Client, procedure string, request any, idempotent bool) (Res, error) {
	var result Res
	attempts := uint(1)
	if idempotent {
		attempts = client.maxRetryAttempts + 1
	}
	err := retry.Do(
		func() error {
			response, err := post[Res](ctx, client, procedure, request)
			if err != nil {
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.RetryIf(isRetryableError),
		retry.LastErrorOnly(true),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
	)
	if err != nil {
		return result, fmt.Errorf("%s > %w", procedure, err)
	}
	return result, nil
}

func post[Res any](ctx context.Context, client *Client, procedure string, request any) (Res, error) {
	var result Res
	apiErr := &Error{}
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		SetError(apiErr).
		Post(procedure)
	if err != nil {
		return result, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		apiErr.StatusCode = response.StatusCode()
		// bodies that are not Connect errors, e.g. from a proxy
		if apiErr.Code == "" {
			apiErr.Code = "unknown"
			apiErr.Message = response.String()
		}
		return result, apiErr
	}
	return result, nil
}

// isRetryableError retries transport failures and transient service errors.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}
