package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"revtrain/internal/errorcatalog"
	"revtrain/internal/workflow"
)

// createSessionRequest starts a new practice session.
type createSessionRequest struct {
	Difficulty string   `json:"difficulty"`
	Length     string   `json:"length"`
	Domain     string   `json:"domain"`
	Categories []string `json:"categories"`
	ErrorCount int      `json:"error_count"`

	// SelectedErrors picks specific defects by category and name instead
	// of sampling from Categories.
	SelectedErrors []selectedError `json:"selected_errors"`
}

type selectedError struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type submitReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

// identity loads or creates the cookie identity and returns the user ID
// and the ID of the current practice session, if any.
func (s *Server) identity(c *gin.Context) (userID, practiceID string) {
	sess, _ := s.cookies.Get(c.Request, cookieName)

	if v, ok := sess.Values[userIDKey].(string); ok && v != "" {
		userID = v
	} else {
		userID = uuid.NewString()
		sess.Values[userIDKey] = userID
		if err := sess.Save(c.Request, c.Writer); err != nil {
			s.log.Warn("failed to save identity cookie", "error", err)
		}
	}
	practiceID, _ = sess.Values[sessionIDKey].(string)
	return userID, practiceID
}

func (s *Server) bindPracticeID(c *gin.Context, practiceID string) {
	sess, _ := s.cookies.Get(c.Request, cookieName)
	sess.Values[sessionIDKey] = practiceID
	if err := sess.Save(c.Request, c.Writer); err != nil {
		s.log.Warn("failed to save session cookie", "error", err)
	}
}

func (s *Server) handleCreateSession(c *gin.Context) {
	userID, _ := s.identity(c)

	// An empty body is fine; everything defaults.
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	var specifics []errorcatalog.ErrorSpec
	for _, sel := range req.SelectedErrors {
		spec, ok := s.catalog.ByName(sel.Category, sel.Name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "unknown error: " + sel.Category + " / " + sel.Name,
			})
			return
		}
		specifics = append(specifics, spec)
	}

	sess, err := s.manager.NewSession(c.Request.Context(), workflow.SessionParams{
		UserID:     userID,
		Length:     errorcatalog.CodeLength(req.Length),
		Difficulty: errorcatalog.Difficulty(req.Difficulty),
		Domain:     req.Domain,
		Categories: req.Categories,
		Specifics:  specifics,
		ErrorCount: req.ErrorCount,
	})
	if err != nil {
		s.log.Error("session creation failed", "error", err, "user", userID)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate practice code"})
		return
	}

	s.registry.put(sess)
	s.bindPracticeID(c, sess.ID)
	c.JSON(http.StatusCreated, sessionView(sess))
}

func (s *Server) handleCurrentSession(c *gin.Context) {
	userID, practiceID := s.identity(c)
	e, ok := s.registry.get(practiceID, userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active practice session"})
		return
	}

	e.mu.Lock()
	view := sessionView(e.session)
	e.mu.Unlock()
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleSubmitReview(c *gin.Context) {
	userID, practiceID := s.identity(c)
	e, ok := s.registry.get(practiceID, userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active practice session"})
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "review text is required"})
		return
	}

	// Serialize submissions for this session. A double-submitted review
	// grades one at a time instead of racing on the workflow state.
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := s.manager.SubmitReview(c.Request.Context(), e.session, req.Review)
	switch {
	case errors.Is(err, workflow.ErrInvalidReviewFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case errors.Is(err, workflow.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		s.log.Error("review submission failed", "error", err, "session", e.session.ID)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not grade the review, try again"})
		return
	}

	if result.Completed {
		s.registry.drop(e.session.ID)
	}
	c.JSON(http.StatusOK, resultView(result))
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Categories()})
}

func (s *Server) handleErrors(c *gin.Context) {
	if term := c.Query("search"); term != "" {
		c.JSON(http.StatusOK, gin.H{"errors": s.catalog.Search(term)})
		return
	}
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category or search parameter required"})
		return
	}
	errs := s.catalog.CategoryErrors(category)
	if len(errs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category: " + category})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "errors": errs})
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rows, err := s.badges.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		s.log.Error("leaderboard query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}

func (s *Server) handleProfile(c *gin.Context) {
	userID, _ := s.identity(c)

	stats, err := s.badges.StatsFor(c.Request.Context(), userID)
	if err != nil {
		s.log.Error("profile query failed", "error", err, "user", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile unavailable"})
		return
	}
	categories, err := s.badges.CategoryStatsFor(c.Request.Context(), userID)
	if err != nil {
		s.log.Error("category stats query failed", "error", err, "user", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile unavailable"})
		return
	}
	c.JSON(http.StatusOK, profileView(stats, categories))
}
