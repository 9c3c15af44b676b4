package main

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

var ErrEmptyCatalog = errors.New("question catalog is empty")

// Randomizer is the shuffling source behind question draws.
// *rand.Rand satisfies it.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRandomizer returns a seeded source when seed is set, otherwise a time-seeded one.
// The result is safe to share between sessions.
func NewRandomizer(seed *int64) Randomizer {
	var r *rand.Rand
	if seed != nil {
		r = rand.New(rand.NewSource(*seed))
	} else {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &lockedRand{r: r}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// SampleQuestions draws min(count, len(catalog)) distinct questions in random order.
// A non-positive count draws the whole catalog. The catalog is not modified.
func SampleQuestions(catalog []QuizQuestion, count int, r Randomizer) ([]QuizQuestion, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := append([]QuizQuestion(nil), catalog...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count <= 0 || count > len(out) {
		count = len(out)
	}
	return out[:count:count], nil
}

func percentOf(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) * 100.0 / float64(total)
}
