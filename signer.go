//go:build !unittest

package tiktok

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// InitSigner launches a headless Chrome instance with stealth mode and
// installs URL signing for all subsequent requests. Without it requests go
// out unsigned, which the upstream accepts in most regions but rejects in
// others with an empty body.
func (a *App) InitSigner() error {
	a.signerMu.Lock()
	defer a.signerMu.Unlock()

	l := launcher.New().Headless(true)
	if a.proxy != "" {
		l = l.Proxy(a.proxy)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}

	page, err := stealth.Page(browser)
	if err != nil {
		return fmt.Errorf("create stealth page: %w", err)
	}

	a.browser = browser
	a.page = page

	a.blockHeavyResources()

	if err := a.page.Navigate(a.baseURL); err != nil {
		return fmt.Errorf("navigate to tiktok: %w", err)
	}
	if err := a.page.WaitStable(2 * time.Second); err != nil {
		return fmt.Errorf("wait for page stable: %w", err)
	}

	a.signingReady.Store(true)
	a.signFunc = a.signURL
	return nil
}

// blockHeavyResources keeps the signing page light: the page exists only to
// expose the signing JS, never to render content.
func (a *App) blockHeavyResources() {
	router := a.browser.HijackRequests()
	blocked := []string{"*.css", "*.png", "*.jpg", "*.jpeg", "*.mp4", "*.woff*", "*.svg", "*analytics*"}
	for _, pattern := range blocked {
		router.MustAdd(pattern, func(ctx *rod.Hijack) {
			ctx.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
		})
	}
	go router.Run()
}

// signURL calls TikTok's frontierSign JS to generate the X-Bogus signature
// and appends the returned params to the URL. Caller must hold signerMu.
func (a *App) signURL(rawURL string) (string, error) {
	if a.page == nil {
		return "", ErrSignerNotReady
	}

	if err := a.ensureSigningReady(); err != nil {
		return "", fmt.Errorf("ensure signing ready: %w", err)
	}

	page := a.page.Timeout(5 * time.Second)

	result, err := page.Eval(`(url) => {
		if (typeof window.byted_acrawler === 'undefined') {
			throw new Error('signing function not available');
		}
		const params = window.byted_acrawler.frontierSign(url);
		if (typeof params === 'string') {
			return params;
		}
		const u = new URL(url);
		for (const [k, v] of Object.entries(params)) {
			u.searchParams.set(k, v);
		}
		return u.toString();
	}`, rawURL)
	if err != nil {
		// Next call reloads the page before signing again.
		a.signingReady.Store(false)
		return "", fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	return result.Value.String(), nil
}

// ensureSigningReady checks the signing JS is available, reloading only after
// a previous failure (cached via atomic bool to avoid per-call overhead).
func (a *App) ensureSigningReady() error {
	if a.signingReady.Load() {
		return nil
	}

	result, err := a.page.Timeout(3 * time.Second).Eval(`() => typeof window.byted_acrawler !== 'undefined'`)
	if err != nil || !result.Value.Bool() {
		if err := a.page.Navigate(a.baseURL); err != nil {
			return fmt.Errorf("reload for signing: %w", err)
		}
		if err := a.page.WaitStable(2 * time.Second); err != nil {
			return fmt.Errorf("wait after reload: %w", err)
		}
	}

	a.signingReady.Store(true)
	return nil
}

func (a *App) closeSigner() error {
	a.signerMu.Lock()
	defer a.signerMu.Unlock()

	if a.page != nil {
		if err := a.page.Close(); err != nil {
			return fmt.Errorf("close page: %w", err)
		}
		a.page = nil
	}
	if a.browser != nil {
		if err := a.browser.Close(); err != nil {
			return fmt.Errorf("close browser: %w", err)
		}
		a.browser = nil
	}
	a.signFunc = nil
	return nil
}
