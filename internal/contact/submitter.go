package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrSubmission covers every way the outbound post can fail. Users see one
// generic notice for all of them.
var ErrSubmission = errors.New("contact form submission failed")

const defaultTimeout = 15 * time.Second

// Submitter posts forms to a third-party form-collection endpoint.
type Submitter struct {
	Endpoint   string
	HTTPClient *http.Client
}

func (s *Submitter) Submit(ctx context.Context, f Form) error {
	endpoint := strings.TrimSpace(s.Endpoint)
	if endpoint == "" {
		return fmt.Errorf("%w: no endpoint configured", ErrSubmission)
	}
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("%w: encode form: %v", ErrSubmission, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: endpoint responded with status %d", ErrSubmission, resp.StatusCode)
	}
	return nil
}
