package tiktok

import (
	"context"
	"fmt"
)

// GetAudio returns an Audio addressing the given id without fetching anything.
func (a *App) GetAudio(id string) Audio {
	return Audio{ID: id}
}

// GetAudioInfo fetches the full metadata snapshot for a music track.
func (a *App) GetAudioInfo(ctx context.Context, audio Audio) (AudioInfo, error) {
	reqURL, err := a.audioInfoURL(audio)
	if err != nil {
		return AudioInfo{}, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("get audio info %q: %w", audio.ID, err)
	}
	return audioInfoFromContent(body), nil
}

// GetAudioTopVideos fetches the top videos using the track.
func (a *App) GetAudioTopVideos(ctx context.Context, audio Audio) ([]VideoInfo, error) {
	reqURL, err := a.audioTopVideosURL(audio)
	if err != nil {
		return nil, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("get top videos for audio %q: %w", audio.ID, err)
	}
	return videoListFromContent(body), nil
}
