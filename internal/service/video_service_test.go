package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "okaigpt/backend/internal/errors"
	"okaigpt/backend/internal/model"
	"okaigpt/backend/internal/repository"
	mock_repo "okaigpt/backend/internal/repository/mocks"
	"okaigpt/backend/internal/service"
)

type stubDispatcher struct {
	dispatched []int64
	err        error
}

func (d *stubDispatcher) DispatchVideo(_ context.Context, video *model.Video) error {
	d.dispatched = append(d.dispatched, video.ID)
	return d.err
}

type stubNotifier struct {
	notified []model.Video
	err      error
}

func (n *stubNotifier) NotifyVideoStatus(_ context.Context, video *model.Video) error {
	n.notified = append(n.notified, *video)
	return n.err
}

func setupVideoService(t *testing.T) (*service.VideoService, *mock_repo.MockRepository, *stubDispatcher, *stubNotifier) {
	repo := mock_repo.NewMockRepository(t)
	dispatcher := &stubDispatcher{}
	notifier := &stubNotifier{}
	return service.NewVideoService(repo, dispatcher, notifier), repo, dispatcher, notifier
}

func statusPtr(s model.VideoStatus) *model.VideoStatus { return &s }

func TestVideoService_StartGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		videoService, repo, dispatcher, _ := setupVideoService(t)
		repo.On("CreateVideo", ctx, mock.MatchedBy(func(v *model.Video) bool {
			return v.Status == model.VideoPending && v.VideoURL == nil && v.CompletedAt == nil &&
				v.ProgressMessage != nil && *v.ProgressMessage == "Video generation queued"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Video).ID = 5
		}).Return(nil).Once()

		video, err := videoService.StartGeneration(ctx, &service.StartVideoRequest{Prompt: "sunset"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), video.ID)
		assert.Equal(t, model.VideoPending, video.Status)
		assert.Nil(t, video.VideoURL)
		assert.Nil(t, video.CompletedAt)
		assert.Equal(t, []int64{5}, dispatcher.dispatched)
	})

	t.Run("Failure - Dispatch marks the video failed", func(t *testing.T) {
		videoService, repo, dispatcher, notifier := setupVideoService(t)
		dispatcher.err = errors.New("broker unreachable")

		repo.On("CreateVideo", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Video).ID = 6
		}).Return(nil).Once()
		repo.On("UpdateVideo", ctx, int64(6), mock.MatchedBy(func(u model.VideoUpdate) bool {
			return *u.Status == model.VideoFailed && u.CompletedAt == nil && u.ProgressMessage != nil
		})).Return(&model.Video{ID: 6, Status: model.VideoFailed}, nil).Once()

		video, err := videoService.StartGeneration(ctx, &service.StartVideoRequest{Prompt: "sunset"})
		assert.Nil(t, video)
		assert.ErrorIs(t, err, app_errors.ErrInternal)
		assert.ErrorContains(t, err, "broker unreachable")
		require.Len(t, notifier.notified, 1)
		assert.Equal(t, model.VideoFailed, notifier.notified[0].Status)
	})

	t.Run("Failure - Dispatch and mark both fail", func(t *testing.T) {
		videoService, repo, dispatcher, notifier := setupVideoService(t)
		dispatcher.err = errors.New("broker unreachable")

		repo.On("CreateVideo", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Video).ID = 7
		}).Return(nil).Once()
		repo.On("UpdateVideo", ctx, int64(7), mock.Anything).Return(nil, errors.New("disk full")).Once()

		_, err := videoService.StartGeneration(ctx, &service.StartVideoRequest{Prompt: "sunset"})
		assert.ErrorIs(t, err, app_errors.ErrInternal)
		assert.Empty(t, notifier.notified)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		videoService, repo, dispatcher, _ := setupVideoService(t)
		repo.On("CreateVideo", ctx, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := videoService.StartGeneration(ctx, &service.StartVideoRequest{Prompt: "sunset"})
		assert.ErrorIs(t, err, app_errors.ErrStoreFailure)
		assert.Empty(t, dispatcher.dispatched)
	})
}

func TestVideoService_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		videoService, repo, _, _ := setupVideoService(t)
		repo.On("GetVideo", ctx, int64(1)).Return(&model.Video{ID: 1, Status: model.VideoProcessing}, nil).Once()

		video, err := videoService.GetStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, model.VideoProcessing, video.Status)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		videoService, repo, _, _ := setupVideoService(t)
		repo.On("GetVideo", ctx, int64(99)).Return(nil, repository.ErrNotFound).Once()

		_, err := videoService.GetStatus(ctx, 99)
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestVideoService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Terminal status without completed_at leaves it untouched", func(t *testing.T) {
		videoService, repo, _, notifier := setupVideoService(t)
		url := "https://cdn.example.com/v.mp4"

		var got model.VideoUpdate
		repo.On("UpdateVideo", ctx, int64(1), mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(2).(model.VideoUpdate)
		}).Return(&model.Video{ID: 1, Status: model.VideoCompleted, VideoURL: &url}, nil).Once()

		video, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{Status: statusPtr(model.VideoCompleted), VideoURL: &url})
		require.NoError(t, err)
		assert.Equal(t, model.VideoCompleted, video.Status)
		assert.Nil(t, got.CompletedAt)
		require.Len(t, notifier.notified, 1)
		assert.Equal(t, model.VideoCompleted, notifier.notified[0].Status)
	})

	t.Run("Success - Explicit completed_at is kept", func(t *testing.T) {
		videoService, repo, _, _ := setupVideoService(t)
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.On("UpdateVideo", ctx, int64(1), mock.MatchedBy(func(u model.VideoUpdate) bool {
			return u.CompletedAt != nil && u.CompletedAt.Equal(at)
		})).Return(&model.Video{ID: 1, Status: model.VideoFailed}, nil).Once()

		_, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{Status: statusPtr(model.VideoFailed), CompletedAt: &at})
		require.NoError(t, err)
	})

	t.Run("Success - Non-terminal status leaves completed_at alone", func(t *testing.T) {
		videoService, repo, _, _ := setupVideoService(t)
		repo.On("UpdateVideo", ctx, int64(1), mock.MatchedBy(func(u model.VideoUpdate) bool {
			return u.CompletedAt == nil && *u.Status == model.VideoProcessing
		})).Return(&model.Video{ID: 1, Status: model.VideoProcessing}, nil).Once()

		_, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{Status: statusPtr(model.VideoProcessing)})
		require.NoError(t, err)
	})

	t.Run("Success - Backwards transition is not rejected", func(t *testing.T) {
		videoService, repo, _, _ := setupVideoService(t)
		repo.On("UpdateVideo", ctx, int64(1), mock.Anything).Return(&model.Video{ID: 1, Status: model.VideoPending}, nil).Once()

		video, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{Status: statusPtr(model.VideoPending)})
		require.NoError(t, err)
		assert.Equal(t, model.VideoPending, video.Status)
	})

	t.Run("Success - Notifier failure is not returned", func(t *testing.T) {
		videoService, repo, _, notifier := setupVideoService(t)
		notifier.err = errors.New("redis down")
		repo.On("UpdateVideo", ctx, int64(1), mock.Anything).Return(&model.Video{ID: 1}, nil).Once()

		_, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{ProgressMessage: strPtr("50%")})
		assert.NoError(t, err)
	})

	t.Run("Failure - Unknown status", func(t *testing.T) {
		videoService, _, _, _ := setupVideoService(t)
		_, err := videoService.UpdateStatus(ctx, 1, &service.UpdateVideoRequest{Status: statusPtr("exploded")})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		videoService, repo, _, notifier := setupVideoService(t)
		repo.On("UpdateVideo", ctx, int64(404), mock.Anything).Return(nil, repository.ErrNotFound).Once()

		_, err := videoService.UpdateStatus(ctx, 404, &service.UpdateVideoRequest{Status: statusPtr(model.VideoProcessing)})
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
		assert.Empty(t, notifier.notified)
	})
}
