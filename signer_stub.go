//go:build unittest

package tiktok

func (a *App) InitSigner() error {
	return ErrSignerNotReady
}

func (a *App) signURL(rawURL string) (string, error) {
	return "", ErrSignerNotReady
}

func (a *App) ensureSigningReady() error {
	if a.signingReady.Load() {
		return nil
	}
	return ErrSignerNotReady
}

func (a *App) closeSigner() error {
	a.page = nil
	a.browser = nil
	a.signFunc = nil
	return nil
}
