package indexer

import (
	"context"
	"fmt"
	"net/http"
)

// Transport performs a single HTTP exchange. *http.Client satisfies it.
type Transport interface {
	Do(request *http.Request) (*http.Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(request *http.Request) (*http.Response, error)

func (f TransportFunc) Do(request *http.Request) (*http.Response, error) {
	return f(request)
}

// usableTransport rejects typed nils hidden behind a non-nil interface.
func usableTransport(transport Transport) bool {
	switch typed := transport.(type) {
	case nil:
		return false
	case TransportFunc:
		return typed != nil
	case *http.Client:
		return typed != nil
	default:
		return true
	}
}

type roundTripResult struct {
	response *http.Response
	err      error
}

// roundTrip races the transport against ctx. When ctx finishes first the
// request context is already done, which tells the transport to abort, and
// any late response body is closed once the transport returns.
func roundTrip(ctx context.Context, transport Transport, request *http.Request) (*http.Response, error) {
	results := make(chan roundTripResult, 1)
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				results <- roundTripResult{err: newNetworkError(fmt.Sprintf("transport panicked: %v", recovered), nil)}
			}
		}()
		response, err := transport.Do(request)
		results <- roundTripResult{response: response, err: err}
	}()

	select {
	case result := <-results:
		return result.response, result.err
	case <-ctx.Done():
		go func() {
			late := <-results
			if late.response != nil && late.response.Body != nil {
				late.response.Body.Close()
			}
		}()
		return nil, ctx.Err()
	}
}
