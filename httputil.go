package coinmarket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// contains http utils to deal with remote services

// loggingTransport logs every round trip at debug level.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		logrus.Debugf("%v %v%v failed: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	logrus.Debugf("%v %v%v %v (%v)", req.Method, req.URL.Host, req.URL.Path, resp.Status, time.Since(start).Round(time.Millisecond))
	return resp, nil
}

// NewClient returns an http.Client that logs its requests. A zero timeout
// means no timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &loggingTransport{base: http.DefaultTransport},
		Timeout:   timeout,
	}
}

// GetJSON performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure. header can be nil.
func GetJSON(ctx context.Context, client *http.Client, addr string, header http.Header, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode %v%v: %w", resp.Request.URL.Host, resp.Request.URL.Path, err)
	}
	return nil
}
