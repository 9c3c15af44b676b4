package main

import (
	"errors"
	"fmt"
	"strings"
)

// QuizQuestion is the immutable, in-memory form of a catalog question.
// Answer is always one of Options.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

var errInvalidQuestion = errors.New("invalid question")

// Validate checks the shape rules every catalog entry must satisfy.
func (q QuizQuestion) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("%w: missing id", errInvalidQuestion)
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w %s: empty prompt", errInvalidQuestion, q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w %s: need at least 2 options, got %d", errInvalidQuestion, q.ID, len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w %s: duplicate option %q", errInvalidQuestion, q.ID, o)
		}
		seen[o] = struct{}{}
	}
	if _, ok := seen[q.Answer]; !ok {
		return fmt.Errorf("%w %s: answer %q is not an option", errInvalidQuestion, q.ID, q.Answer)
	}
	return nil
}

// HasOption reports whether option is one of the question's choices.
func (q QuizQuestion) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// DefaultCatalog is the built-in space catalog, used when no seed file exists.
func DefaultCatalog() []QuizQuestion {
	return []QuizQuestion{
		{
			ID:      "red-planet",
			Prompt:  "What planet is known as the Red Planet?",
			Options: []string{"Earth", "Mars", "Jupiter", "Venus"},
			Answer:  "Mars",
		},
		{
			ID:      "most-moons",
			Prompt:  "Which planet has the most moons?",
			Options: []string{"Saturn", "Jupiter", "Uranus", "Neptune"},
			Answer:  "Jupiter",
		},
		{
			ID:      "hottest-planet",
			Prompt:  "What is the hottest planet in our solar system?",
			Options: []string{"Venus", "Mercury", "Earth", "Mars"},
			Answer:  "Venus",
		},
		{
			ID:      "rings",
			Prompt:  "Which planet is known for its rings?",
			Options: []string{"Saturn", "Neptune", "Mars", "Jupiter"},
			Answer:  "Saturn",
		},
		{
			ID:      "largest-planet",
			Prompt:  "What is the largest planet in our solar system?",
			Options: []string{"Earth", "Jupiter", "Saturn", "Neptune"},
			Answer:  "Jupiter",
		},
		{
			ID:      "closest-to-sun",
			Prompt:  "Which planet is closest to the Sun?",
			Options: []string{"Mercury", "Venus", "Earth", "Mars"},
			Answer:  "Mercury",
		},
		{
			ID:      "rotates-on-side",
			Prompt:  "Which planet rotates on its side?",
			Options: []string{"Uranus", "Neptune", "Saturn", "Earth"},
			Answer:  "Uranus",
		},
		{
			ID:      "earths-twin",
			Prompt:  "Which planet is known as the Earth's twin?",
			Options: []string{"Venus", "Mars", "Mercury", "Jupiter"},
			Answer:  "Venus",
		},
	}
}
