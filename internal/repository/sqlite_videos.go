package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"okaigpt/backend/internal/model"
)

const videoColumns = "id, prompt, initial_image_url, status, video_url, progress_message, created_at, completed_at"

func scanVideo(row scanner) (*model.Video, error) {
	var v model.Video
	var initialImageURL, videoURL, progress sql.NullString
	var completedAt sql.NullTime
	if err := row.Scan(&v.ID, &v.Prompt, &initialImageURL, &v.Status, &videoURL, &progress, &v.CreatedAt, &completedAt); err != nil {
		return nil, err
	}
	v.InitialImageURL = stringPtr(initialImageURL)
	v.VideoURL = stringPtr(videoURL)
	v.ProgressMessage = stringPtr(progress)
	if completedAt.Valid {
		t := completedAt.Time
		v.CompletedAt = &t
	}
	return &v, nil
}

func (r *sqliteRepository) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.CreatedAt.IsZero() {
		video.CreatedAt = r.now()
	}
	query := `
		INSERT INTO generated_videos (prompt, initial_image_url, status, video_url, progress_message, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	var completedAt sql.NullTime
	if video.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *video.CompletedAt, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query,
		video.Prompt,
		nullableString(video.InitialImageURL),
		video.Status,
		nullableString(video.VideoURL),
		nullableString(video.ProgressMessage),
		video.CreatedAt,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert video: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read video id: %w", err)
	}
	video.ID = id
	return nil
}

func (r *sqliteRepository) GetVideo(ctx context.Context, videoID int64) (*model.Video, error) {
	video, err := scanVideo(r.db.QueryRowContext(ctx, "SELECT "+videoColumns+" FROM generated_videos WHERE id = ?", videoID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return video, nil
}

// UpdateVideo applies only the supplied fields. No status transition is
// rejected here.
func (r *sqliteRepository) UpdateVideo(ctx context.Context, videoID int64, update model.VideoUpdate) (*model.Video, error) {
	sets := []string{}
	args := []any{}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}
	if update.VideoURL != nil {
		sets = append(sets, "video_url = ?")
		args = append(args, nullableString(update.VideoURL))
	}
	if update.ProgressMessage != nil {
		sets = append(sets, "progress_message = ?")
		args = append(args, nullableString(update.ProgressMessage))
	}
	if update.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, *update.CompletedAt)
	}

	if len(sets) == 0 {
		return r.GetVideo(ctx, videoID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := "UPDATE generated_videos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := tx.ExecContext(ctx, query, append(args, videoID)...)
	if err != nil {
		return nil, fmt.Errorf("could not update video: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	video, err := scanVideo(tx.QueryRowContext(ctx, "SELECT "+videoColumns+" FROM generated_videos WHERE id = ?", videoID))
	if err != nil {
		return nil, fmt.Errorf("could not reload video: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit video update: %w", err)
	}
	return video, nil
}

func (r *sqliteRepository) ListRecentVideos(ctx context.Context, limit int) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+videoColumns+" FROM generated_videos ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []model.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *video)
	}
	return videos, rows.Err()
}
