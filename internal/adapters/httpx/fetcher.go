package httpx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/merchant-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	DefaultTimeout  = 30 * time.Second
	RequestIDHeader = "X-Request-Id"
)

var ErrTimeout = errors.New("request timed out")

type Options struct {
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client is the timeout-bound request helper every backend call goes
// through. It never retries.
type Client struct {
	rest    *resty.Client
	timeout time.Duration
	logger  *log.Logger
}

var _ ports.Fetcher = (*Client)(nil)

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		// resty sets Timeout on the client it wraps; keep the caller's untouched.
		hc := *opts.HTTPClient
		rc = resty.NewWithClient(&hc)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(logger).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{rest: rc, timeout: timeout, logger: logger}
}

func (c *Client) FetchWithTimeout(ctx context.Context, req ports.Request) (ports.Response, error) {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r := c.rest.R().SetContext(requestCtx)
	if len(req.Headers) > 0 {
		r.SetHeaderMultiValues(req.Headers)
	}
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		r.SetHeader(RequestIDHeader, requestID)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	c.logger.Debug("sending request", "method", method, "url", req.URL, "request_id", requestID)

	started := time.Now()
	resp, err := r.Execute(method, req.URL)
	if err != nil {
		if isTimeout(err) {
			return ports.Response{}, fmt.Errorf("%w after %s: %w", ErrTimeout, c.timeout, err)
		}
		return ports.Response{}, fmt.Errorf("perform request: %w", err)
	}

	c.logger.Debug("received response", "status", resp.StatusCode(), "request_id", requestID, "elapsed", time.Since(started).Round(time.Millisecond))

	return ports.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// requestContext keeps a caller deadline that is tighter than the client
// timeout and otherwise applies the client timeout.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= c.timeout {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.timeout)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
