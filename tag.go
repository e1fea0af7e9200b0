package tiktok

import (
	"context"
	"fmt"
)

// GetTag resolves a hashtag name to its identity, including the display
// title. Unlike the other identity factories this performs one fetch, since
// the title only exists upstream.
func (a *App) GetTag(ctx context.Context, id string) (Tag, error) {
	info, err := a.GetTagInfo(ctx, TagName(id))
	if err != nil {
		return Tag{}, fmt.Errorf("get tag %q: %w", id, err)
	}
	return info.Tag, nil
}

// GetTagInfo fetches the full metadata snapshot for a Tag or TagName.
func (a *App) GetTagInfo(ctx context.Context, ident TagIdentifier) (TagInfo, error) {
	tag := ident.canonicalTag()
	reqURL, err := a.tagInfoURL(tag)
	if err != nil {
		return TagInfo{}, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return TagInfo{}, fmt.Errorf("get tag info %q: %w", tag.ID, err)
	}
	return tagInfoFromContent(body), nil
}

// GetTagTopVideos fetches the top videos under the hashtag.
func (a *App) GetTagTopVideos(ctx context.Context, tag Tag) ([]VideoInfo, error) {
	reqURL, err := a.tagTopVideosURL(tag)
	if err != nil {
		return nil, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("get top videos for tag %q: %w", tag.ID, err)
	}
	return videoListFromContent(body), nil
}
