package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tiktok "github.com/KingOfBear-YT1/tiktok-app-api"
)

func main() {
	user := flag.String("user", "", "Username to look up")
	userID := flag.String("user-id", "", "User id for video listings")
	liked := flag.Bool("liked", false, "List liked videos instead of uploads (with --user-id)")
	video := flag.String("video", "", "Video id to look up")
	audio := flag.String("audio", "", "Audio id to look up")
	audioTop := flag.Bool("audio-top", false, "List top videos instead of metadata (with --audio)")
	tag := flag.String("tag", "", "Hashtag to look up")
	tagTop := flag.Bool("tag-top", false, "List top videos instead of metadata (with --tag)")
	trending := flag.Bool("trending", false, "List trending videos")
	proxyURL := flag.String("proxy", "", "Proxy URL (http/https/socks5)")
	sign := flag.Bool("sign", false, "Sign request URLs via a headless browser")
	flag.Parse()

	if *user == "" && *userID == "" && *video == "" && *audio == "" && *tag == "" && !*trending {
		fmt.Fprintln(os.Stderr, "usage: tiktok-app --user <name> | --user-id <id> [--liked] | --video <id> | --audio <id> [--audio-top] | --tag <name> [--tag-top] | --trending")
		os.Exit(1)
	}

	app := tiktok.New()
	defer app.Close()

	if *proxyURL != "" {
		if err := app.SetProxy(*proxyURL); err != nil {
			log.Fatalf("set proxy: %v", err)
		}
	}
	if *sign {
		if err := app.InitSigner(); err != nil {
			log.Fatalf("init signer: %v", err)
		}
	}

	ctx := context.Background()

	switch {
	case *trending:
		videos, err := app.GetTrendingVideos(ctx)
		if err != nil {
			log.Fatalf("trending: %v", err)
		}
		printVideos(videos)

	case *user != "":
		info, err := app.GetUserInfo(ctx, tiktok.Username(*user))
		if err != nil {
			log.Fatalf("user info: %v", err)
		}
		printUserInfo(info)

	case *userID != "":
		u := app.GetUserByID(*userID)
		var videos []tiktok.VideoInfo
		var err error
		if *liked {
			videos, err = app.GetLikedVideos(ctx, u)
		} else {
			videos, err = app.GetRecentVideos(ctx, u)
		}
		if err != nil {
			log.Fatalf("user videos: %v", err)
		}
		printVideos(videos)

	case *video != "":
		info, err := app.GetVideoInfo(ctx, app.GetVideo(*video))
		if err != nil {
			log.Fatalf("video info: %v", err)
		}
		printVideo(info)

	case *audio != "":
		if *audioTop {
			videos, err := app.GetAudioTopVideos(ctx, app.GetAudio(*audio))
			if err != nil {
				log.Fatalf("audio top videos: %v", err)
			}
			printVideos(videos)
			return
		}
		info, err := app.GetAudioInfo(ctx, app.GetAudio(*audio))
		if err != nil {
			log.Fatalf("audio info: %v", err)
		}
		fmt.Printf("Audio:    %s\n", info.Audio.ID)
		fmt.Printf("Title:    %s\n", info.Title)
		fmt.Printf("Author:   %s\n", info.AuthorName)
		fmt.Printf("Duration: %ds\n", info.Duration)

	case *tag != "":
		if *tagTop {
			videos, err := app.GetTagTopVideos(ctx, tiktok.Tag{ID: *tag})
			if err != nil {
				log.Fatalf("tag top videos: %v", err)
			}
			printVideos(videos)
			return
		}
		info, err := app.GetTagInfo(ctx, tiktok.TagName(*tag))
		if err != nil {
			log.Fatalf("tag info: %v", err)
		}
		fmt.Printf("Tag:    %s\n", info.Tag.Title)
		fmt.Printf("Desc:   %s\n", info.Description)
		fmt.Printf("Videos: %d\n", info.VideoCount)
		fmt.Printf("Views:  %d\n", info.ViewCount)
	}
}

func printUserInfo(info tiktok.UserInfo) {
	fmt.Printf("User:      %s\n", info.User.Username)
	fmt.Printf("ID:        %s\n", info.User.ID)
	fmt.Printf("Nickname:  %s\n", info.Nickname)
	fmt.Printf("Followers: %d\n", info.FollowerCount)
	fmt.Printf("Following: %d\n", info.FollowingCount)
	fmt.Printf("Videos:    %d\n", info.VideoCount)
	fmt.Printf("Verified:  %v\n", info.Verified)
	fmt.Printf("Bio:       %s\n", info.Bio)
}

func printVideo(v tiktok.VideoInfo) {
	fmt.Printf("Video:    %s by @%s\n", v.Video.ID, v.Author.Username)
	fmt.Printf("Posted:   %s\n", v.CreatedAt.Format("2006-01-02"))
	fmt.Printf("Plays:    %d\n", v.PlayCount)
	fmt.Printf("Likes:    %d\n", v.LikeCount)
	fmt.Printf("Comments: %d\n", v.CommentCount)
	fmt.Printf("Shares:   %d\n", v.ShareCount)
	fmt.Printf("Music:    %s\n", v.Music.Title)
	if v.Description != "" {
		fmt.Printf("Desc:     %s\n", v.Description)
	}
}

func printVideos(videos []tiktok.VideoInfo) {
	for i, v := range videos {
		fmt.Printf("[%d] %s by @%s — %d plays, %d likes (%s)\n",
			i+1, v.Video.ID, v.Author.Username, v.PlayCount, v.LikeCount,
			v.CreatedAt.Format("2006-01-02"),
		)
		if v.Description != "" {
			fmt.Printf("    %s\n", v.Description)
		}
	}
	fmt.Printf("\nTotal: %d videos\n", len(videos))
}
