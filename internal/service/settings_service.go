package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	app_errors "okaigpt/backend/internal/errors"
)

const (
	keyTheme                   = "theme"
	keyDefaultTargetLanguage   = "default_target_language"
	keyDefaultGenZMode         = "default_gen_z_mode"
	keyDefaultCopyCodeOnlyMode = "default_copy_code_only_mode"
)

// Settings holds the application preferences stored in the settings table.
type Settings struct {
	Theme                   string `json:"theme" validate:"required,oneof=light dark system"`
	DefaultTargetLanguage   string `json:"default_target_language" validate:"max=64"`
	DefaultGenZMode         bool   `json:"default_gen_z_mode"`
	DefaultCopyCodeOnlyMode bool   `json:"default_copy_code_only_mode"`
}

// DefaultSettings are written on first start.
func DefaultSettings() Settings {
	return Settings{Theme: "system"}
}

type SettingsService struct {
	db *sql.DB
}

func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// InitAndGet returns the stored settings, writing the defaults first when
// the table is empty.
func (s *SettingsService) InitAndGet(ctx context.Context) (*Settings, error) {
	values, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		slog.Info("Found existing settings in the database.")
		return settingsFromValues(values), nil
	}

	slog.Info("No settings found in the database. Writing defaults...")
	defaults := DefaultSettings()
	if err := s.save(ctx, &defaults); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return &defaults, nil
}

// Get retrieves the current settings. Keys missing from the table take their
// default value.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	values, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return settingsFromValues(values), nil
}

// Save validates and stores every setting in one transaction.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	switch settings.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("%w: unknown theme %q", app_errors.ErrValidation, settings.Theme)
	}
	return s.save(ctx, settings)
}

func (s *SettingsService) load(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get settings from db: %v", app_errors.ErrStoreFailure, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: failed to scan setting: %v", app_errors.ErrStoreFailure, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrStoreFailure, err)
	}
	return values, nil
}

func (s *SettingsService) save(ctx context.Context, settings *Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", app_errors.ErrStoreFailure, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("%w: failed to prepare statement: %v", app_errors.ErrStoreFailure, err)
	}
	defer stmt.Close()

	pairs := [][2]string{
		{keyTheme, settings.Theme},
		{keyDefaultTargetLanguage, settings.DefaultTargetLanguage},
		{keyDefaultGenZMode, strconv.FormatBool(settings.DefaultGenZMode)},
		{keyDefaultCopyCodeOnlyMode, strconv.FormatBool(settings.DefaultCopyCodeOnlyMode)},
	}
	for _, kv := range pairs {
		if _, err := stmt.ExecContext(ctx, kv[0], kv[1]); err != nil {
			return fmt.Errorf("%w: failed to save setting %s: %v", app_errors.ErrStoreFailure, kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit settings: %v", app_errors.ErrStoreFailure, err)
	}
	return nil
}

func settingsFromValues(values map[string]string) *Settings {
	settings := DefaultSettings()
	if v, ok := values[keyTheme]; ok && v != "" {
		settings.Theme = v
	}
	settings.DefaultTargetLanguage = values[keyDefaultTargetLanguage]
	settings.DefaultGenZMode, _ = strconv.ParseBool(values[keyDefaultGenZMode])
	settings.DefaultCopyCodeOnlyMode, _ = strconv.ParseBool(values[keyDefaultCopyCodeOnlyMode])
	return &settings
}
