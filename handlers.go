package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

/*** Catalog ***/

func ListQuestions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := LoadCatalog(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out := make([]QuestionView, 0, len(catalog))
		for _, q := range catalog {
			out = append(out, QuestionView{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
		}
		c.JSON(http.StatusOK, out)
	}
}

/*** Quiz session ***/

type SelectOptionReq struct {
	Option string `json:"option"`
}

type ResultResponse struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Percent float64        `json:"percent"`
	Answers []AnswerRecord `json:"answers"`
}

// quizStatus maps core errors to HTTP. Rejected transitions are conflicts;
// the page is expected to disable the control that caused them.
func quizStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnknownOption):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrNoCurrentQuestion),
		errors.Is(err, ErrSessionNotEnded):
		return http.StatusConflict, err.Error()
	case errors.Is(err, ErrEmptyCatalog):
		return http.StatusServiceUnavailable, "no questions"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeQuizError(c *gin.Context, log logrus.FieldLogger, err error) {
	status, msg := quizStatus(err)
	entry := log.WithError(err).WithField("path", c.FullPath())
	if status >= http.StatusInternalServerError {
		entry.Error("Quiz request failed")
	} else {
		entry.Debug("Quiz request rejected")
	}
	c.JSON(status, gin.H{"error": msg})
}

func sessionFor(c *gin.Context, store *SessionStore, log logrus.FieldLogger) (*QuizSession, bool) {
	pubID, dbID, ok := playerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no player"})
		return nil, false
	}
	s, err := store.Get(pubID, dbID)
	if err != nil {
		writeQuizError(c, log, err)
		return nil, false
	}
	return s, true
}

// GET /api/v1/quiz
func GetQuiz(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// POST /api/v1/quiz/start
func StartQuiz(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		if err := s.Restart(); err != nil {
			writeQuizError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// POST /api/v1/quiz/select
func SelectOption(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectOptionReq
		if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Option) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "option required"})
			return
		}
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		if err := s.SelectOption(req.Option); err != nil {
			writeQuizError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// POST /api/v1/quiz/advance
func RequestAdvance(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		if err := s.RequestAdvance(); err != nil {
			writeQuizError(c, log, err)
			return
		}
		c.JSON(http.StatusAccepted, s.Snapshot())
	}
}

// POST /api/v1/quiz/transition-complete
func TransitionComplete(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		if err := s.OnTransitionComplete(); err != nil {
			writeQuizError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, s.Snapshot())
	}
}

// GET /api/v1/quiz/result
func GetResult(store *SessionStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionFor(c, store, log)
		if !ok {
			return
		}
		res, err := s.Summary()
		if err != nil {
			writeQuizError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ResultResponse{
			Score:   res.Score,
			Total:   res.Total,
			Percent: percentOf(res.Score, res.Total),
			Answers: res.Answers,
		})
	}
}
