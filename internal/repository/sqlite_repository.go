package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"okaigpt/backend/internal/model"
)

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// touch returns a timestamp strictly after prev, so that every session
// update is observable even when the clock has not advanced.
func (r *sqliteRepository) touch(prev time.Time) time.Time {
	now := r.now()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

// nullableString maps nil and empty strings to SQL NULL.
func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

const sessionColumns = "id, title, gen_z_mode, copy_code_only_mode, target_language, created_at, updated_at"

func scanSession(row scanner) (*model.Session, error) {
	var s model.Session
	var title, targetLanguage sql.NullString
	if err := row.Scan(&s.ID, &title, &s.GenZMode, &s.CopyCodeOnlyMode, &targetLanguage, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Title = stringPtr(title)
	s.TargetLanguage = stringPtr(targetLanguage)
	return &s, nil
}

func (r *sqliteRepository) CreateSession(ctx context.Context, session *model.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.now()
	}
	if session.UpdatedAt.Before(session.CreatedAt) {
		session.UpdatedAt = session.CreatedAt
	}
	query := "INSERT INTO chat_sessions (" + sessionColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		nullableString(session.Title),
		session.GenZMode,
		session.CopyCodeOnlyMode,
		nullableString(session.TargetLanguage),
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: session %q", ErrDuplicateKey, session.ID)
		}
		return fmt.Errorf("could not insert session: %w", err)
	}
	if session.Title != nil && *session.Title == "" {
		session.Title = nil
	}
	if session.TargetLanguage != nil && *session.TargetLanguage == "" {
		session.TargetLanguage = nil
	}
	return nil
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := "SELECT " + sessionColumns + " FROM chat_sessions WHERE id = ?"
	session, err := scanSession(r.db.QueryRowContext(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (r *sqliteRepository) ListSessions(ctx context.Context) ([]*model.Session, error) {
	query := "SELECT " + sessionColumns + " FROM chat_sessions ORDER BY updated_at DESC, id ASC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*model.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *sqliteRepository) UpdateSession(ctx context.Context, sessionID string, update model.SessionUpdate) (*model.Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var prev time.Time
	err = tx.QueryRowContext(ctx, "SELECT updated_at FROM chat_sessions WHERE id = ?", sessionID).Scan(&prev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not read session: %w", err)
	}

	sets := []string{}
	args := []any{}
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, nullableString(update.Title))
	}
	if update.GenZMode != nil {
		sets = append(sets, "gen_z_mode = ?")
		args = append(args, *update.GenZMode)
	}
	if update.CopyCodeOnlyMode != nil {
		sets = append(sets, "copy_code_only_mode = ?")
		args = append(args, *update.CopyCodeOnlyMode)
	}
	if update.TargetLanguage != nil {
		sets = append(sets, "target_language = ?")
		args = append(args, nullableString(update.TargetLanguage))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.touch(prev), sessionID)

	query := "UPDATE chat_sessions SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("could not update session: %w", err)
	}

	session, err := scanSession(tx.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM chat_sessions WHERE id = ?", sessionID))
	if err != nil {
		return nil, fmt.Errorf("could not reload session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit session update: %w", err)
	}
	return session, nil
}

// DeleteSession removes the messages first so the delete does not depend on
// the foreign key pragma being enabled for cascade.
func (r *sqliteRepository) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_messages WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("could not delete session messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_sessions WHERE id = ?", sessionID); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	return tx.Commit()
}

func (r *sqliteRepository) ClearHistory(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_messages"); err != nil {
		return fmt.Errorf("could not delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM chat_sessions"); err != nil {
		return fmt.Errorf("could not delete sessions: %w", err)
	}
	return tx.Commit()
}

// AddMessage checks the session, inserts the message and touches the session
// inside one transaction, so a failure at any step leaves nothing behind.
func (r *sqliteRepository) AddMessage(ctx context.Context, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer tx.Rollback()

	var prev time.Time
	err = tx.QueryRowContext(ctx, "SELECT updated_at FROM chat_sessions WHERE id = ?", message.SessionID).Scan(&prev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("could not read session: %w", err)
	}

	var metadata sql.NullString
	if len(message.Metadata) > 0 {
		raw, err := json.Marshal(message.Metadata)
		if err != nil {
			return fmt.Errorf("could not encode message metadata: %w", err)
		}
		metadata = sql.NullString{String: string(raw), Valid: true}
	}

	touched := r.touch(prev)
	if message.CreatedAt.IsZero() {
		message.CreatedAt = touched
	}

	insertMsgQuery := `
		INSERT INTO chat_messages (session_id, role, content, content_type, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := tx.ExecContext(ctx, insertMsgQuery,
		message.SessionID,
		message.Role,
		message.Content,
		message.ContentType,
		metadata,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read message id: %w", err)
	}

	_, err = tx.ExecContext(ctx, "UPDATE chat_sessions SET updated_at = ? WHERE id = ?", touched, message.SessionID)
	if err != nil {
		return fmt.Errorf("could not update session timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit message: %w", err)
	}
	message.ID = id
	return nil
}

func (r *sqliteRepository) GetMessages(ctx context.Context, sessionID string, limit *int, offset int) ([]model.Message, error) {
	messages := []model.Message{}
	if limit != nil && *limit == 0 {
		return messages, nil
	}

	// SQLite treats a negative LIMIT as "no limit".
	sqlLimit := -1
	if limit != nil {
		sqlLimit = *limit
	}

	query := `
		SELECT id, session_id, role, content, content_type, metadata, created_at
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID, sqlLimit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var msg model.Message
		var metadata sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.ContentType, &metadata, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &msg.Metadata); err != nil {
				return nil, fmt.Errorf("could not decode metadata of message %d: %w", msg.ID, err)
			}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *sqliteRepository) Stats(ctx context.Context) (*model.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM chat_sessions),
			(SELECT COUNT(*) FROM chat_messages),
			(SELECT COUNT(*) FROM document_analyses),
			(SELECT COUNT(*) FROM generated_images),
			(SELECT COUNT(*) FROM generated_videos),
			(SELECT COUNT(*) FROM generated_videos WHERE status = 'completed'),
			(SELECT COUNT(*) FROM quizzes),
			(SELECT COUNT(*) FROM web_searches)
	`
	var s model.Stats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Sessions, &s.Messages, &s.DocumentAnalyses, &s.GeneratedImages,
		&s.GeneratedVideos, &s.CompletedVideos, &s.Quizzes, &s.WebSearches,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
