package tiktok

import (
	"context"
	"fmt"
)

// GetUserByName resolves a username to its full identity via the user-detail
// endpoint.
func (a *App) GetUserByName(ctx context.Context, username string) (User, error) {
	info, err := a.GetUserInfo(ctx, Username(username))
	if err != nil {
		return User{}, fmt.Errorf("get user %q: %w", username, err)
	}
	return info.User, nil
}

// GetUserByID returns a User addressing the given id. No network call is
// made; the username stays empty unless a later info lookup resolves it.
func (a *App) GetUserByID(id string) User {
	return User{ID: id}
}

// GetUserInfo fetches the full profile snapshot for a User or Username.
func (a *App) GetUserInfo(ctx context.Context, ident UserIdentifier) (UserInfo, error) {
	user := ident.canonicalUser()
	reqURL, err := a.userInfoURL(user)
	if err != nil {
		return UserInfo{}, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return UserInfo{}, fmt.Errorf("get user info: %w", err)
	}
	return userInfoFromContent(body), nil
}

// GetRecentVideos fetches the user's most recent uploads, newest first.
// Returns an empty list for users with no public videos.
func (a *App) GetRecentVideos(ctx context.Context, user User) ([]VideoInfo, error) {
	reqURL, err := a.recentVideosURL(user)
	if err != nil {
		return nil, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("get recent videos for user %q: %w", user.ID, err)
	}
	return videoListFromContent(body), nil
}

// GetLikedVideos fetches the videos the user has liked. Returns an empty list
// when the liked feed is empty or hidden.
func (a *App) GetLikedVideos(ctx context.Context, user User) ([]VideoInfo, error) {
	reqURL, err := a.likedVideosURL(user)
	if err != nil {
		return nil, err
	}

	body, err := a.fetchValid(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("get liked videos for user %q: %w", user.ID, err)
	}
	return videoListFromContent(body), nil
}
