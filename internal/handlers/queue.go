package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/dequeue/api/v1"
	"github.com/kubev2v/dequeue/pkg/collection"
)

// GetQueueStatus returns the queue size and mode
// (GET /queue)
func (h *Handler) GetQueueStatus(c *gin.Context) {
	var resp v1.QueueStatus
	resp.FromModel(h.queueSrv.Status())

	c.JSON(http.StatusOK, resp)
}

// SetQueueMode changes the order in which jobs are served
// (PUT /queue/mode)
func (h *Handler) SetQueueMode(c *gin.Context) {
	var req v1.QueueModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	mode, err := collection.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.queueSrv.SetMode(mode)

	var resp v1.QueueStatus
	resp.FromModel(h.queueSrv.Status())
	c.JSON(http.StatusOK, resp)
}

// ClearQueue drops every pending job
// (DELETE /queue)
func (h *Handler) ClearQueue(c *gin.Context) {
	h.queueSrv.Clear()

	var resp v1.QueueStatus
	resp.FromModel(h.queueSrv.Status())
	c.JSON(http.StatusOK, resp)
}

// GetHistory returns the results of consumed jobs, oldest first
// (GET /history)
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewJobResultList(h.queueSrv.History()))
}
