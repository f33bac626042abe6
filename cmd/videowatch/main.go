// Command videowatch follows a video generation job until it completes or
// fails, printing each status change.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"okaigpt/backend/internal/client"
	"okaigpt/backend/internal/model"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	flags := pflag.NewFlagSet("videowatch", pflag.ContinueOnError)
	flags.String("server", "http://localhost:8000", "base URL of the OKAIgpt server")
	flags.Int64("video", 0, "id of the video to watch")
	flags.Duration("interval", client.DefaultPollInterval, "polling interval")
	flags.Duration("timeout", 10*time.Minute, "give up after this long")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	v := viper.New()
	v.SetEnvPrefix("OKAIGPT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		logger.Error("Could not bind flags", "error", err)
		return 1
	}

	videoID := v.GetInt64("video")
	if videoID <= 0 {
		fmt.Fprintln(os.Stderr, "a positive --video id is required")
		flags.PrintDefaults()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, v.GetDuration("timeout"))
	defer cancel()

	api := client.New(v.GetString("server"))
	poller := client.NewVideoPoller(api, v.GetDuration("interval"))

	var last model.VideoStatus
	video, err := poller.Watch(ctx, videoID, func(video *model.Video) {
		if video.Status == last {
			return
		}
		last = video.Status
		attrs := []any{"video_id", video.ID, "status", video.Status}
		if video.ProgressMessage != nil {
			attrs = append(attrs, "progress", *video.ProgressMessage)
		}
		logger.Info("Video status changed", attrs...)
	})
	if err != nil {
		logger.Error("Stopped watching video", "video_id", videoID, "error", err)
		return 1
	}

	if video.Status == model.VideoFailed {
		return 1
	}
	if video.VideoURL != nil {
		fmt.Println(*video.VideoURL)
	}
	return 0
}
