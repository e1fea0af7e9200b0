package tiktok

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// newTestApp points an App at the given test server.
func newTestApp(serverURL string) *App {
	a := New()
	a.baseURL = serverURL
	return a
}

// spyServer serves fixed JSON and counts how many requests it saw.
func spyServer(t *testing.T, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func userDetailJSON(id, username string) string {
	return fmt.Sprintf(`{"statusCode": 0, "userInfo": {
		"user": {"id": "%s", "uniqueId": "%s", "nickname": "Test", "signature": "test bio", "avatarLarger": "https://img.example/a.jpg", "verified": true},
		"stats": {"followerCount": 1000, "followingCount": 50, "heartCount": 5000, "videoCount": 42}
	}}`, id, username)
}

func itemFeedListJSON(count int) string {
	items := make([]string, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, itemFeedVideoJSON(fmt.Sprintf("%d", 1000+i)))
	}
	return fmt.Sprintf(`{"statusCode": 0, "itemList": [%s]}`, strings.Join(items, ","))
}

func topContentListJSON(count int) string {
	items := make([]string, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, topContentVideoJSON(fmt.Sprintf("%d", 3000+i)))
	}
	return fmt.Sprintf(`{"statusCode": 0, "body": {"itemListData": [%s]}}`, strings.Join(items, ","))
}

func itemDetailJSON(id string) string {
	return fmt.Sprintf(`{"statusCode": 0, "itemInfo": {"itemStruct": %s}}`, itemFeedVideoJSON(id))
}

func musicDetailJSON(id, title string) string {
	return fmt.Sprintf(`{"statusCode": 0, "musicInfo": {"music": {"id": "%s", "title": "%s", "authorName": "catlady", "playUrl": "https://a.example/m.mp3", "duration": 30}}}`, id, title)
}

func challengeDetailJSON(id, title string) string {
	return fmt.Sprintf(`{"statusCode": 0, "challengeInfo": {"challenge": {"id": "%s", "title": "%s", "desc": "desc"}, "stats": {"videoCount": 50000, "viewCount": 1000000000}}}`, id, title)
}

func statusJSON(code int) string {
	return fmt.Sprintf(`{"statusCode": %d}`, code)
}

// ---------------------------------------------------------------------------
// Identity factories: synchronous, no network
// ---------------------------------------------------------------------------

func TestIdentityFactoriesMakeNoRequests(t *testing.T) {
	t.Parallel()
	srv, calls := spyServer(t, statusJSON(0))
	a := newTestApp(srv.URL)

	user := a.GetUserByID("123")
	if user.ID != "123" || user.Username != "" {
		t.Errorf("unexpected user: %+v", user)
	}
	if v := a.GetVideo("456"); v.ID != "456" {
		t.Errorf("unexpected video: %+v", v)
	}
	if au := a.GetAudio("789"); au.ID != "789" {
		t.Errorf("unexpected audio: %+v", au)
	}

	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no requests, server saw %d", n)
	}
}

// ---------------------------------------------------------------------------
// Precondition checks fail before any fetch
// ---------------------------------------------------------------------------

func TestIllegalArgumentPrecedesFetch(t *testing.T) {
	t.Parallel()
	srv, calls := spyServer(t, statusJSON(0))
	a := newTestApp(srv.URL)
	ctx := context.Background()

	ops := map[string]func() error{
		"GetUserInfo": func() error {
			_, err := a.GetUserInfo(ctx, User{})
			return err
		},
		"GetRecentVideos": func() error {
			_, err := a.GetRecentVideos(ctx, User{Username: "name-only"})
			return err
		},
		"GetLikedVideos": func() error {
			_, err := a.GetLikedVideos(ctx, User{})
			return err
		},
		"GetVideoInfo": func() error {
			_, err := a.GetVideoInfo(ctx, Video{ID: ""})
			return err
		},
		"GetAudioInfo": func() error {
			_, err := a.GetAudioInfo(ctx, Audio{})
			return err
		},
		"GetAudioTopVideos": func() error {
			_, err := a.GetAudioTopVideos(ctx, Audio{})
			return err
		},
		"GetTagInfo": func() error {
			_, err := a.GetTagInfo(ctx, Tag{})
			return err
		},
		"GetTagTopVideos": func() error {
			_, err := a.GetTagTopVideos(ctx, Tag{})
			return err
		},
	}

	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrIllegalArgument) {
			t.Errorf("%s: expected ErrIllegalArgument, got %v", name, err)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no requests, server saw %d", n)
	}
}

// ---------------------------------------------------------------------------
// Status-code classification
// ---------------------------------------------------------------------------

func TestStatusCodeMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{"success", 0, nil},
		{"illegal identifier", 10201, ErrIllegalIdentifier},
		{"not found", 10202, ErrNotFound},
		{"video not found", 10204, ErrNotFound},
		{"unrecognized code falls through", 7, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, _ := spyServer(t, statusJSON(tt.code))
			a := newTestApp(srv.URL)

			_, err := a.GetVideoInfo(context.Background(), Video{ID: "1001"})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected fallthrough to construction, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestGetUserByName(t *testing.T) {
	t.Parallel()
	srv, calls := spyServer(t, userDetailJSON("42", "bob"))
	a := newTestApp(srv.URL)

	user, err := a.GetUserByName(context.Background(), "bob")
	if err != nil {
		t.Fatalf("get user by name: %v", err)
	}
	if user.ID != "42" || user.Username != "bob" {
		t.Errorf("unexpected user: %+v", user)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected one request, server saw %d", n)
	}
}

func TestGetUserInfo(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, userDetailJSON("42", "bob"))
	a := newTestApp(srv.URL)

	for name, ident := range map[string]UserIdentifier{
		"by username":    Username("bob"),
		"by user object": User{ID: "42"},
	} {
		info, err := a.GetUserInfo(context.Background(), ident)
		if err != nil {
			t.Fatalf("%s: get user info: %v", name, err)
		}
		if info.User != (User{ID: "42", Username: "bob"}) {
			t.Errorf("%s: unexpected identity: %+v", name, info.User)
		}
		if info.FollowerCount != 1000 || !info.Verified || info.Bio != "test bio" {
			t.Errorf("%s: unexpected profile: %+v", name, info)
		}
	}
}

func TestGetUserInfoNotFound(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, statusJSON(10202))
	a := newTestApp(srv.URL)

	if _, err := a.GetUserInfo(context.Background(), Username("nobody")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecentVideos(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, itemFeedListJSON(3))
	a := newTestApp(srv.URL)

	videos, err := a.GetRecentVideos(context.Background(), a.GetUserByID("42"))
	if err != nil {
		t.Fatalf("get recent videos: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	if videos[0].Video.ID != "1000" || videos[0].Author.Username != "catlady" {
		t.Errorf("unexpected first video: %+v", videos[0])
	}
}

func TestGetLikedVideosEmptyFeed(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, statusJSON(0))
	a := newTestApp(srv.URL)

	videos, err := a.GetLikedVideos(context.Background(), User{ID: "42"})
	if err != nil {
		t.Fatalf("get liked videos: %v", err)
	}
	if videos == nil || len(videos) != 0 {
		t.Fatalf("expected empty list, got %v", videos)
	}
}

// ---------------------------------------------------------------------------
// Videos, audio, tags, trending
// ---------------------------------------------------------------------------

func TestGetVideoInfo(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, itemDetailJSON("1001"))
	a := newTestApp(srv.URL)

	info, err := a.GetVideoInfo(context.Background(), a.GetVideo("1001"))
	if err != nil {
		t.Fatalf("get video info: %v", err)
	}
	if info.Video.ID != "1001" || info.Description != "dancing cat" {
		t.Errorf("unexpected video info: %+v", info)
	}
	if info.Music.Audio.ID != "555" {
		t.Errorf("unexpected music: %+v", info.Music)
	}
}

func TestGetAudioInfo(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, musicDetailJSON("555", "original sound"))
	a := newTestApp(srv.URL)

	info, err := a.GetAudioInfo(context.Background(), a.GetAudio("555"))
	if err != nil {
		t.Fatalf("get audio info: %v", err)
	}
	if info.Audio.ID != "555" || info.Title != "original sound" {
		t.Errorf("unexpected audio info: %+v", info)
	}
}

func TestGetAudioTopVideos(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, topContentListJSON(2))
	a := newTestApp(srv.URL)

	videos, err := a.GetAudioTopVideos(context.Background(), Audio{ID: "555"})
	if err != nil {
		t.Fatalf("get audio top videos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].Video.ID != "3000" || videos[0].Music.Title != "original sound" {
		t.Errorf("unexpected first video: %+v", videos[0])
	}
}

func TestGetTag(t *testing.T) {
	t.Parallel()
	srv, calls := spyServer(t, challengeDetailJSON("funny", "funny"))
	a := newTestApp(srv.URL)

	tag, err := a.GetTag(context.Background(), "funny")
	if err != nil {
		t.Fatalf("get tag: %v", err)
	}
	if tag.ID != "funny" || tag.Title != "funny" {
		t.Errorf("unexpected tag: %+v", tag)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected exactly one fetch, server saw %d", n)
	}
}

func TestGetTagInfoNotFound(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, statusJSON(10202))
	a := newTestApp(srv.URL)

	if _, err := a.GetTagInfo(context.Background(), TagName("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetTagTopVideos(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, topContentListJSON(2))
	a := newTestApp(srv.URL)

	videos, err := a.GetTagTopVideos(context.Background(), Tag{ID: "funny"})
	if err != nil {
		t.Fatalf("get tag top videos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
}

func TestGetTrendingVideos(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, itemFeedListJSON(30))
	a := newTestApp(srv.URL)

	videos, err := a.GetTrendingVideos(context.Background())
	if err != nil {
		t.Fatalf("get trending videos: %v", err)
	}
	if len(videos) != 30 {
		t.Fatalf("expected 30 videos, got %d", len(videos))
	}
}

// ---------------------------------------------------------------------------
// Transport failures
// ---------------------------------------------------------------------------

func TestMalformedJSONIsInvalidResponse(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, `<html>not json</html>`)
	a := newTestApp(srv.URL)

	if _, err := a.GetTrendingVideos(context.Background()); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestHTTPErrorStatusIsInvalidResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	a := newTestApp(srv.URL)

	if _, err := a.GetTrendingVideos(context.Background()); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestContextCancellationPropagates(t *testing.T) {
	t.Parallel()
	srv, _ := spyServer(t, statusJSON(0))
	a := newTestApp(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.GetTrendingVideos(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// URL signing seam
// ---------------------------------------------------------------------------

func TestSignFuncAppliedToRequests(t *testing.T) {
	t.Parallel()
	var signedSeen atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("X-Bogus") == "test-signature" {
			signedSeen.Store(true)
		}
		fmt.Fprint(w, statusJSON(0))
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(srv.URL)
	a.signFunc = func(rawURL string) (string, error) {
		return rawURL + "&X-Bogus=test-signature", nil
	}

	if _, err := a.GetTrendingVideos(context.Background()); err != nil {
		t.Fatalf("get trending videos: %v", err)
	}
	if !signedSeen.Load() {
		t.Fatal("expected request URL to carry the signature")
	}
}

func TestSignFuncFailureAborts(t *testing.T) {
	t.Parallel()
	srv, calls := spyServer(t, statusJSON(0))
	a := newTestApp(srv.URL)
	a.signFunc = func(rawURL string) (string, error) {
		return "", ErrSigningFailed
	}

	if _, err := a.GetTrendingVideos(context.Background()); !errors.Is(err, ErrSigningFailed) {
		t.Fatalf("expected ErrSigningFailed, got %v", err)
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no requests after signing failure, server saw %d", n)
	}
}
