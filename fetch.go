package tiktok

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// content is a fetched upstream response: the domain status code the platform
// embeds in the JSON body, plus the parsed body itself. Domain errors live in
// statusCode — a "not found" still arrives as HTTP 200.
type content struct {
	statusCode int64
	body       gjson.Result
}

// fetchContent performs the GET and parses the body. It fails only on
// transport-level problems (request error, non-200 HTTP status, malformed
// JSON); classifying the embedded status code is the caller's job.
func (a *App) fetchContent(ctx context.Context, rawURL string) (content, error) {
	a.signerMu.Lock()
	if a.signFunc != nil {
		signed, err := a.signFunc(rawURL)
		if err != nil {
			a.signerMu.Unlock()
			return content{}, fmt.Errorf("sign url: %w", err)
		}
		rawURL = signed
	}
	a.signerMu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return content{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.tiktok.com/")
	req.Header.Set("Origin", "https://www.tiktok.com")

	resp, err := a.client.Do(req)
	if err != nil {
		return content{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return content{}, fmt.Errorf("%w: http status %d", ErrInvalidResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return content{}, fmt.Errorf("read response body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return content{}, fmt.Errorf("%w: malformed json body", ErrInvalidResponse)
	}

	root := gjson.ParseBytes(body)
	return content{statusCode: root.Get("statusCode").Int(), body: root}, nil
}

// fetchValid fetches the URL and applies the uniform status-code
// classification, returning the parsed body on success.
func (a *App) fetchValid(ctx context.Context, rawURL string) (gjson.Result, error) {
	cont, err := a.fetchContent(ctx, rawURL)
	if err != nil {
		return gjson.Result{}, err
	}
	if err := classifyStatus(cont.statusCode); err != nil {
		return gjson.Result{}, err
	}
	return cont.body, nil
}

// classifyStatus maps the embedded status code to an error kind. Codes other
// than the two documented error codes fall through as success; unrecognized
// nonzero codes are logged so new upstream codes stay visible.
func classifyStatus(code int64) error {
	switch code {
	case statusCodes.success:
		return nil
	case statusCodes.illegalIdentifier:
		return ErrIllegalIdentifier
	case statusCodes.notFound, statusCodes.videoNotFound:
		return ErrNotFound
	default:
		debugLog("unrecognized status code %d, treating as success", code)
		return nil
	}
}
