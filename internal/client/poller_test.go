package client_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okaigpt/backend/internal/client"
	"okaigpt/backend/internal/model"
)

type scriptedFetcher struct {
	mu       sync.Mutex
	statuses []model.VideoStatus
	err      error
	calls    int
}

func (f *scriptedFetcher) GetVideoStatus(ctx context.Context, videoID int64) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	status := f.statuses[len(f.statuses)-1]
	if f.calls <= len(f.statuses) {
		status = f.statuses[f.calls-1]
	}
	return &model.Video{ID: videoID, Status: status}, nil
}

func TestVideoPoller_Watch(t *testing.T) {
	t.Run("Stops on terminal status", func(t *testing.T) {
		fetcher := &scriptedFetcher{statuses: []model.VideoStatus{model.VideoPending, model.VideoProcessing, model.VideoCompleted}}
		var seen []model.VideoStatus

		video, err := client.NewVideoPoller(fetcher, time.Millisecond).Watch(context.Background(), 5, func(v *model.Video) {
			seen = append(seen, v.Status)
		})

		require.NoError(t, err)
		assert.Equal(t, model.VideoCompleted, video.Status)
		assert.Equal(t, []model.VideoStatus{model.VideoPending, model.VideoProcessing, model.VideoCompleted}, seen)
		assert.Equal(t, 3, fetcher.calls)
	})

	t.Run("Stops on cancellation", func(t *testing.T) {
		fetcher := &scriptedFetcher{statuses: []model.VideoStatus{model.VideoProcessing}}
		ctx, cancel := context.WithCancel(context.Background())

		video, err := client.NewVideoPoller(fetcher, time.Hour).Watch(ctx, 5, func(*model.Video) { cancel() })

		assert.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, video)
		assert.Equal(t, model.VideoProcessing, video.Status)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("Stops on fetch error", func(t *testing.T) {
		fetcher := &scriptedFetcher{err: errors.New("connection refused")}

		_, err := client.NewVideoPoller(fetcher, time.Millisecond).Watch(context.Background(), 5, nil)

		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 1, fetcher.calls)
	})
}
