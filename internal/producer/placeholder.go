package producer

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/oklog/ulid/v2"

	"okaigpt/backend/internal/model"
)

const maxQuizQuestions = 5

// Placeholder implements every producer with deterministic, template-based
// output. It performs no inference.
type Placeholder struct {
	assetBaseURL string
}

// NewPlaceholder returns placeholder producers that mint asset URLs under assetBaseURL.
func NewPlaceholder(assetBaseURL string) *Placeholder {
	return &Placeholder{assetBaseURL: strings.TrimRight(assetBaseURL, "/")}
}

// Set returns the placeholder wired into every slot.
func (p *Placeholder) Set() Set {
	return Set{Documents: p, Images: p, Quizzes: p, Search: p}
}

func (p *Placeholder) AnalyzeDocument(ctx context.Context, imageURL, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n", imageURL)
	fmt.Fprintf(&b, "Request: %s\n\n", prompt)
	b.WriteString("The scan was received and stored. Automatic text extraction is not enabled on this server, ")
	b.WriteString("so no content could be read from the image.")
	return b.String(), nil
}

func (p *Placeholder) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/images/%s.png?prompt=%s", p.assetBaseURL, ulid.Make().String(), url.QueryEscape(prompt)), nil
}

func (p *Placeholder) SearchWeb(ctx context.Context, query string) (string, []string, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	q := url.QueryEscape(query)
	sources := []string{
		"https://en.wikipedia.org/w/index.php?search=" + q,
		"https://duckduckgo.com/?q=" + q,
		"https://www.google.com/search?q=" + q,
	}
	summary := fmt.Sprintf("Live search is not enabled on this server. The sources below are search pages for %q.", query)
	return summary, sources, nil
}

// GenerateQuiz turns up to five sentences of the source into fill-in-the-blank
// questions. The blanked word is the longest word of each sentence and the
// other options are the blanked words of the remaining sentences.
func (p *Placeholder) GenerateQuiz(ctx context.Context, sourceText string) ([]model.QuizQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type blank struct {
		sentence string
		answer   string
	}
	var blanks []blank
	for _, sentence := range splitSentences(sourceText) {
		answer := longestWord(sentence)
		if answer == "" {
			continue
		}
		blanks = append(blanks, blank{sentence: sentence, answer: answer})
		if len(blanks) == maxQuizQuestions {
			break
		}
	}

	if len(blanks) == 0 {
		return []model.QuizQuestion{{
			Question:    "What is the source text mainly about?",
			Options:     []string{"It is too short to tell", "A historical event", "A scientific process", "A personal story"},
			AnswerIndex: 0,
		}}, nil
	}

	fillers := []string{"none of these", "all of these", "unknown"}
	questions := make([]model.QuizQuestion, 0, len(blanks))
	for i, bl := range blanks {
		options := []string{}
		for j, other := range blanks {
			if j != i && !containsFold(options, other.answer) && !strings.EqualFold(other.answer, bl.answer) {
				options = append(options, other.answer)
			}
			if len(options) == 3 {
				break
			}
		}
		for _, f := range fillers {
			if len(options) == 3 {
				break
			}
			options = append(options, f)
		}

		// Rotate the correct answer through the positions.
		pos := i % (len(options) + 1)
		options = append(options[:pos], append([]string{bl.answer}, options[pos:]...)...)

		questions = append(questions, model.QuizQuestion{
			Question:    "Fill in the blank: " + strings.Replace(bl.sentence, bl.answer, "_____", 1),
			Options:     options,
			AnswerIndex: pos,
		})
	}
	return questions, nil
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			flush()
		}
	}
	flush()
	return sentences
}

// longestWord returns the longest word of at least four letters, or "" when
// the sentence has fewer than three words.
func longestWord(sentence string) string {
	words := strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	if len(words) < 3 {
		return ""
	}
	best := ""
	for _, w := range words {
		if len([]rune(w)) > len([]rune(best)) {
			best = w
		}
	}
	if len([]rune(best)) < 4 {
		return ""
	}
	return best
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
