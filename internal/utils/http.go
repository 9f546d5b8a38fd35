package utils

import (
	"io"
	"net/http"
	"time"
)

// NewHTTPClient returns client with limited connection pool
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: newTransport()}
}

func newTransport() http.RoundTripper {
	res := http.DefaultTransport.(*http.Transport).Clone()
	res.MaxConnsPerHost = 20
	res.MaxIdleConns = 10
	res.MaxIdleConnsPerHost = 5
	res.IdleConnTimeout = 90 * time.Second
	return res
}

// DrainAndClose discards the rest of the body and closes it
func DrainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1000))
	_ = resp.Body.Close()
}
