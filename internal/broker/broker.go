// Package broker connects the video lifecycle to processes outside this
// server: a job queue consumed by the external generation worker, and a
// pub/sub channel announcing status changes.
package broker

import (
	"context"
	"log/slog"

	"okaigpt/backend/internal/model"
)

// VideoDispatcher hands a newly created video to whatever generates it.
type VideoDispatcher interface {
	DispatchVideo(ctx context.Context, video *model.Video) error
}

// StatusNotifier announces that a video's status record changed.
type StatusNotifier interface {
	NotifyVideoStatus(ctx context.Context, video *model.Video) error
}

// VideoJob is the queue payload read by the generation worker.
type VideoJob struct {
	VideoID         int64   `json:"video_id"`
	Prompt          string  `json:"prompt"`
	InitialImageURL *string `json:"initial_image_url,omitempty"`
}

// LogDispatcher is used when no queue is configured. The video stays pending
// until something calls the status update operation.
type LogDispatcher struct{}

func (LogDispatcher) DispatchVideo(_ context.Context, video *model.Video) error {
	slog.Info("No video queue configured; video awaits an external status update", "video_id", video.ID)
	return nil
}

// NopNotifier discards status notifications.
type NopNotifier struct{}

func (NopNotifier) NotifyVideoStatus(context.Context, *model.Video) error { return nil }
