package tiktok

import (
	"context"
	"fmt"
)

// GetTrendingVideos fetches the current trending feed, at most one page.
func (a *App) GetTrendingVideos(ctx context.Context) ([]VideoInfo, error) {
	body, err := a.fetchValid(ctx, a.trendingURL())
	if err != nil {
		return nil, fmt.Errorf("get trending videos: %w", err)
	}
	return videoListFromContent(body), nil
}
