package tiktok

import (
	"context"
	"fmt"
)

// GetVideo returns a Video addressing the given id without fetching anything.
func (a *App) GetVideo(id string) Video {
	return Video{ID: id}
}

// GetVideoInfo fetches the full metadata snapshot for a video.
func (a *App) GetVideoInfo(ctx context.Context, video Video) (VideoInfo, error) {
	reqURL, err := a.videoInfoURL(video)
	if err != nil {
		return VideoInfo{}, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("get video info %q: %w", video.ID, err)
	}
	return videoInfoFromContent(body), nil
}
