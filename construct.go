package tiktok

import (
	"time"

	"github.com/tidwall/gjson"
)

// The upstream API represents a video in two JSON shapes: the item-feed shape
// (item_list endpoints and item detail) and the top-content-list shape (music
// and challenge top content). Instead of two mapping functions, one mapper
// runs over a table of field paths per shape, so the VideoInfo invariant is
// enforced in a single place.

// videoPaths names where each VideoInfo field lives in a raw video fragment.
type videoPaths struct {
	id           string
	description  string
	createTime   string
	coverURL     string
	playURL      string
	authorID     string
	authorName   string
	musicID      string
	musicTitle   string
	playCount    string
	likeCount    string
	commentCount string
	shareCount   string
}

var itemFeedPaths = videoPaths{
	id:           "id",
	description:  "desc",
	createTime:   "createTime",
	coverURL:     "video.cover",
	playURL:      "video.playAddr",
	authorID:     "author.id",
	authorName:   "author.uniqueId",
	musicID:      "music.id",
	musicTitle:   "music.title",
	playCount:    "stats.playCount",
	likeCount:    "stats.diggCount",
	commentCount: "stats.commentCount",
	shareCount:   "stats.shareCount",
}

var topContentPaths = videoPaths{
	id:           "itemInfos.id",
	description:  "itemInfos.text",
	createTime:   "itemInfos.createTime",
	coverURL:     "itemInfos.covers.0",
	playURL:      "itemInfos.video.urls.0",
	authorID:     "authorInfos.userId",
	authorName:   "authorInfos.uniqueId",
	musicID:      "musicInfos.musicId",
	musicTitle:   "musicInfos.musicName",
	playCount:    "itemInfos.playCount",
	likeCount:    "itemInfos.diggCount",
	commentCount: "itemInfos.commentCount",
	shareCount:   "itemInfos.shareCount",
}

// videoInfoFrom maps one raw video fragment to a VideoInfo using the given
// path table. Missing fields stay at their zero value; extra fields are
// ignored.
func videoInfoFrom(item gjson.Result, paths videoPaths) VideoInfo {
	info := VideoInfo{
		Video:       Video{ID: item.Get(paths.id).String()},
		Description: item.Get(paths.description).String(),
		CoverURL:    item.Get(paths.coverURL).String(),
		PlayURL:     item.Get(paths.playURL).String(),
		Author: User{
			ID:       item.Get(paths.authorID).String(),
			Username: item.Get(paths.authorName).String(),
		},
		Music: AudioInfo{
			Audio: Audio{ID: item.Get(paths.musicID).String()},
			Title: item.Get(paths.musicTitle).String(),
		},
		PlayCount:    int(item.Get(paths.playCount).Int()),
		LikeCount:    int(item.Get(paths.likeCount).Int()),
		CommentCount: int(item.Get(paths.commentCount).Int()),
		ShareCount:   int(item.Get(paths.shareCount).Int()),
	}
	if created := item.Get(paths.createTime); created.Exists() {
		info.CreatedAt = time.Unix(created.Int(), 0)
	}
	return info
}

// videoInfoFromContent maps a single-item detail response body.
func videoInfoFromContent(body gjson.Result) VideoInfo {
	return videoInfoFrom(body.Get("itemInfo.itemStruct"), itemFeedPaths)
}

// videoListFromContent detects which list shape the endpoint produced and
// maps every entry. A body carrying none of the list fields is an empty
// result, not an error. The list is capped at the page size even if the
// upstream over-delivers.
func videoListFromContent(body gjson.Result) []VideoInfo {
	items, paths := body.Get("items"), itemFeedPaths
	if !items.Exists() {
		items = body.Get("itemList")
	}
	if !items.Exists() {
		items, paths = body.Get("body.itemListData"), topContentPaths
	}

	videos := []VideoInfo{}
	items.ForEach(func(_, item gjson.Result) bool {
		videos = append(videos, videoInfoFrom(item, paths))
		return len(videos) < listPageSize
	})
	return videos
}

// userInfoFromContent maps a user-detail response body.
func userInfoFromContent(body gjson.Result) UserInfo {
	user := body.Get("userInfo.user")
	stats := body.Get("userInfo.stats")
	return UserInfo{
		User: User{
			ID:       user.Get("id").String(),
			Username: user.Get("uniqueId").String(),
		},
		Nickname:       user.Get("nickname").String(),
		Bio:            user.Get("signature").String(),
		AvatarURL:      user.Get("avatarLarger").String(),
		Verified:       user.Get("verified").Bool(),
		FollowerCount:  int(stats.Get("followerCount").Int()),
		FollowingCount: int(stats.Get("followingCount").Int()),
		LikeCount:      int(stats.Get("heartCount").Int()),
		VideoCount:     int(stats.Get("videoCount").Int()),
	}
}

// audioInfoFromContent maps a music-detail response body.
func audioInfoFromContent(body gjson.Result) AudioInfo {
	music := body.Get("musicInfo.music")
	return AudioInfo{
		Audio:      Audio{ID: music.Get("id").String()},
		Title:      music.Get("title").String(),
		AuthorName: music.Get("authorName").String(),
		CoverURL:   music.Get("coverLarge").String(),
		PlayURL:    music.Get("playUrl").String(),
		Duration:   int(music.Get("duration").Int()),
	}
}

// tagInfoFromContent maps a challenge-detail response body.
func tagInfoFromContent(body gjson.Result) TagInfo {
	challenge := body.Get("challengeInfo.challenge")
	stats := body.Get("challengeInfo.stats")
	return TagInfo{
		Tag: Tag{
			ID:    challenge.Get("id").String(),
			Title: challenge.Get("title").String(),
		},
		Description: challenge.Get("desc").String(),
		VideoCount:  int(stats.Get("videoCount").Int()),
		ViewCount:   int(stats.Get("viewCount").Int()),
	}
}
