package client

import (
	"context"
	"time"

	"okaigpt/backend/internal/model"
)

const DefaultPollInterval = 3 * time.Second

// StatusFetcher reads the current state of a video job.
type StatusFetcher interface {
	GetVideoStatus(ctx context.Context, videoID int64) (*model.Video, error)
}

// VideoPoller repeatedly fetches a video's status until it settles.
type VideoPoller struct {
	fetcher  StatusFetcher
	interval time.Duration
}

func NewVideoPoller(fetcher StatusFetcher, interval time.Duration) *VideoPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &VideoPoller{fetcher: fetcher, interval: interval}
}

// Watch fetches the status immediately and then once per interval, calling
// onUpdate with every observation. It returns the final record once the status
// is terminal, the first fetch error, or ctx.Err() when the context is done.
// The ticker is always stopped before Watch returns.
func (p *VideoPoller) Watch(ctx context.Context, videoID int64, onUpdate func(*model.Video)) (*model.Video, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		video, err := p.fetcher.GetVideoStatus(ctx, videoID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}
		if onUpdate != nil {
			onUpdate(video)
		}
		if video.Status.IsTerminal() {
			return video, nil
		}

		select {
		case <-ctx.Done():
			return video, ctx.Err()
		case <-ticker.C:
		}
	}
}
