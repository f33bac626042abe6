// Package producer defines the result producers behind each tool. A producer
// computes a tool's output from its input; persistence is handled elsewhere,
// so a real model integration can replace a producer without touching the
// stores.
package producer

import (
	"context"

	"okaigpt/backend/internal/model"
)

// DocumentAnalyzer answers a prompt about a scanned document image.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, imageURL, prompt string) (string, error)
}

// ImageGenerator turns a prompt into the URL of a generated image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// QuizGenerator builds multiple-choice questions from a source text.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, sourceText string) ([]model.QuizQuestion, error)
}

// WebSearcher answers a query with a summary and the URLs it drew on.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string) (summary string, sources []string, err error)
}

// Set bundles the producers used by the tool service.
type Set struct {
	Documents DocumentAnalyzer
	Images    ImageGenerator
	Quizzes   QuizGenerator
	Search    WebSearcher
}
