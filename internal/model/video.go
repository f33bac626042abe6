package model

import "time"

// VideoStatus is the lifecycle label of a generated video.
type VideoStatus string

const (
	VideoPending    VideoStatus = "pending"
	VideoProcessing VideoStatus = "processing"
	VideoCompleted  VideoStatus = "completed"
	VideoFailed     VideoStatus = "failed"
)

// IsTerminal reports whether no further progress is expected after s.
func (s VideoStatus) IsTerminal() bool {
	return s == VideoCompleted || s == VideoFailed
}

// Valid reports whether s is one of the known statuses.
func (s VideoStatus) Valid() bool {
	switch s {
	case VideoPending, VideoProcessing, VideoCompleted, VideoFailed:
		return true
	}
	return false
}

// CanTransition reports whether moving from one status to another follows the
// intended lifecycle (pending -> processing -> completed|failed, or pending
// straight to a terminal status). The store does not call this; it is offered
// to callers that want to enforce the lifecycle themselves.
func CanTransition(from, to VideoStatus) bool {
	if from == to {
		return !from.IsTerminal()
	}
	switch from {
	case VideoPending:
		return to == VideoProcessing || to.IsTerminal()
	case VideoProcessing:
		return to.IsTerminal()
	}
	return false
}

// Video is a video generation request and its current state.
type Video struct {
	ID              int64       `json:"id"`
	Prompt          string      `json:"prompt"`
	InitialImageURL *string     `json:"initial_image_url"`
	Status          VideoStatus `json:"status"`
	VideoURL        *string     `json:"video_url"`
	ProgressMessage *string     `json:"progress_message"`
	CreatedAt       time.Time   `json:"created_at"`
	CompletedAt     *time.Time  `json:"completed_at"`
}

// VideoUpdate carries the fields of a partial video status update.
type VideoUpdate struct {
	Status          *VideoStatus
	VideoURL        *string
	ProgressMessage *string
	CompletedAt     *time.Time
}

// ActivityType names the tool that produced a recent activity.
type ActivityType string

const (
	ActivityDocument ActivityType = "document_analysis"
	ActivityImage    ActivityType = "image"
	ActivityVideo    ActivityType = "video"
	ActivityQuiz     ActivityType = "quiz"
	ActivitySearch   ActivityType = "web_search"
)

// Activity is one entry of the merged recent-activity feed. Exactly one of
// the payload pointers is set, matching Type.
type Activity struct {
	Type      ActivityType      `json:"type"`
	ID        int64             `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Document  *DocumentAnalysis `json:"document_analysis,omitempty"`
	Image     *GeneratedImage   `json:"image,omitempty"`
	Video     *Video            `json:"video,omitempty"`
	Quiz      *Quiz             `json:"quiz,omitempty"`
	Search    *WebSearch        `json:"web_search,omitempty"`
}
