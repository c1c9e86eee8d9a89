package ports

import (
	"context"
	"net/http"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Fetcher issues a single HTTP request bounded by a timeout. It fails instead
// of hanging once the timeout elapses.
type Fetcher interface {
	FetchWithTimeout(ctx context.Context, req Request) (Response, error)
}
