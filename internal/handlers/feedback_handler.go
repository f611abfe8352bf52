package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LiuBangJie/online-ordering/internal/repository"
	"github.com/LiuBangJie/online-ordering/internal/session"
)

type FeedbackHandler struct {
	Feedback *repository.FeedbackRepository
}

func NewFeedbackHandler(feedback *repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback}
}

// GET /feedback
func (h *FeedbackHandler) Page(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"submitted": false})
}

// POST /feedback
//
// The message is stored as submitted, with no content or length checks, tied
// to whatever table the session is bound to.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	message := c.PostForm("message")

	if err := h.Feedback.Append(session.TableNumber(c), message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submitted": true})
}
