package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/bnema/merchant-cli/internal/ports"
	json "github.com/goccy/go-json"
)

const (
	CustomerStatsPath   = "/user_stats/get_customer_stats"
	CreateOfferingPath  = "/offerings/create_new_offering"
	PaymentLinkPath     = "/payment/create_payment_link"
	NotificationPath    = "/user_activity/create_new_notification"
	contentTypeJSON     = "application/json"
	maxErrorBodyPreview = 512
)

// Client calls the merchant backend. Every method POSTs a JSON payload and
// resolves to the decoded response envelope.
type Client struct {
	baseURI string
	fetcher ports.Fetcher
}

var _ ports.Backend = (*Client)(nil)

func NewClient(baseURI string, fetcher ports.Fetcher) (*Client, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is required")
	}

	trimmed := strings.TrimRight(strings.TrimSpace(baseURI), "/")
	if trimmed == "" {
		return nil, errors.New("api base uri is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base uri: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base uri must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base uri host is required")
	}

	return &Client{baseURI: trimmed, fetcher: fetcher}, nil
}

func (c *Client) GetCustomerStats(ctx context.Context, req domain.CustomerStatsRequest, headers http.Header) (domain.APIResponse[domain.CustomerStats], error) {
	return post[domain.CustomerStats](ctx, c, CustomerStatsPath, req, headers)
}

func (c *Client) AddNewService(ctx context.Context, service domain.ServiceModel, headers http.Header) (domain.APIResponse[domain.ServiceModel], error) {
	return post[domain.ServiceModel](ctx, c, CreateOfferingPath, service, headers)
}

func (c *Client) GeneratePaymentLink(ctx context.Context, req domain.PaymentRequestModel, headers http.Header) (domain.APIResponse[domain.PaymentLink], error) {
	return post[domain.PaymentLink](ctx, c, PaymentLinkPath, req, headers)
}

func (c *Client) CreateNewNotification(ctx context.Context, req domain.NotificationRequest, headers http.Header) (domain.APIResponse[domain.Notification], error) {
	return post[domain.Notification](ctx, c, NotificationPath, req, headers)
}

func (c *Client) endpoint(path string) string {
	return c.baseURI + path
}

func post[T any](ctx context.Context, c *Client, path string, payload any, headers http.Header) (domain.APIResponse[T], error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.APIResponse[T]{}, fmt.Errorf("encode %s payload: %w", path, err)
	}

	resp, err := c.fetcher.FetchWithTimeout(ctx, ports.Request{
		Method:  http.MethodPost,
		URL:     c.endpoint(path),
		Headers: requestHeaders(headers),
		Body:    body,
	})
	if err != nil {
		return domain.APIResponse[T]{}, fmt.Errorf("post %s: %w", path, err)
	}

	var envelope domain.APIResponse[T]
	trimmed := bytes.TrimSpace(resp.Body)
	var decodeErr error
	if len(trimmed) > 0 {
		decodeErr = json.Unmarshal(trimmed, &envelope)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &domain.StatusError{StatusCode: resp.StatusCode, Body: preview(trimmed)}
		if decodeErr == nil {
			statusErr.Message = envelope.Message
		}
		return domain.APIResponse[T]{}, fmt.Errorf("post %s: %w", path, statusErr)
	}

	if decodeErr != nil {
		return domain.APIResponse[T]{}, fmt.Errorf("decode %s response: %w", path, decodeErr)
	}

	return envelope, nil
}

// requestHeaders copies caller headers and pins Content-Type, which callers
// cannot override or remove.
func requestHeaders(extra http.Header) http.Header {
	headers := make(http.Header, len(extra)+1)
	for key, values := range extra {
		for _, value := range values {
			headers.Add(key, value)
		}
	}
	headers.Set("Content-Type", contentTypeJSON)

	return headers
}

func preview(body []byte) string {
	if len(body) > maxErrorBodyPreview {
		return string(body[:maxErrorBodyPreview]) + "..."
	}
	return string(body)
}
