package model

import (
	"time"
)

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentType describes how a message's content should be rendered.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentPDF   ContentType = "pdf"
)

// Session is a named conversation thread grouping ordered messages.
type Session struct {
	ID               string    `json:"id"`
	Title            *string   `json:"title"`
	GenZMode         bool      `json:"gen_z_mode"`
	CopyCodeOnlyMode bool      `json:"copy_code_only_mode"`
	TargetLanguage   *string   `json:"target_language"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SessionUpdate carries the fields of a partial session update.
// Nil fields are left untouched; an empty Title or TargetLanguage clears it.
type SessionUpdate struct {
	Title            *string
	GenZMode         *bool
	CopyCodeOnlyMode *bool
	TargetLanguage   *string
}

// Message stores a single turn in a session. Messages are immutable.
type Message struct {
	ID          int64          `json:"id"`
	SessionID   string         `json:"session_id"`
	Role        Role           `json:"role"`
	Content     string         `json:"content"`
	ContentType ContentType    `json:"content_type"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// DocumentAnalysis is the result of analyzing a scanned document image.
type DocumentAnalysis struct {
	ID        int64     `json:"id"`
	ImageURL  string    `json:"image_url"`
	Prompt    string    `json:"prompt"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedImage is an image produced from a text prompt.
type GeneratedImage struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizQuestion is one multiple-choice question. AnswerIndex points into Options.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// Quiz is a set of questions generated from a source text.
type Quiz struct {
	ID         int64          `json:"id"`
	SourceText string         `json:"source_text"`
	Questions  []QuizQuestion `json:"questions"`
	CreatedAt  time.Time      `json:"created_at"`
}

// WebSearch is a summarized answer for a query along with its source URLs.
type WebSearch struct {
	ID        int64     `json:"id"`
	Query     string    `json:"query"`
	Summary   string    `json:"summary"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats holds row counts used by the dashboard.
type Stats struct {
	Sessions         int64 `json:"sessions"`
	Messages         int64 `json:"messages"`
	DocumentAnalyses int64 `json:"document_analyses"`
	GeneratedImages  int64 `json:"generated_images"`
	GeneratedVideos  int64 `json:"generated_videos"`
	CompletedVideos  int64 `json:"completed_videos"`
	Quizzes          int64 `json:"quizzes"`
	WebSearches      int64 `json:"web_searches"`
}
