package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/dequeue/api/v1"
	srvErrors "github.com/kubev2v/dequeue/pkg/errors"
)

const maxBatchSize = 100

// ListJobs returns the pending jobs in insertion order
// (GET /jobs)
func (h *Handler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewJobList(h.queueSrv.List()))
}

// AddJob validates and queues a job
// (POST /jobs)
func (h *Handler) AddJob(c *gin.Context) {
	var req v1.Job
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := req.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err = h.queueSrv.Add(job)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, v1.NewJob(job))
}

// PeekJob runs the head job, at most once, and returns its result without
// removing it
// (GET /jobs/head)
func (h *Handler) PeekJob(c *gin.Context) {
	result, err := h.queueSrv.Peek(c.Request.Context())
	if err != nil {
		writeQueueError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewJobResult(result))
}

// PollJob removes the head job and returns its result
// (POST /jobs/head)
func (h *Handler) PollJob(c *gin.Context) {
	result, err := h.queueSrv.Poll(c.Request.Context())
	if err != nil {
		writeQueueError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewJobResult(result))
}

type batchParams struct {
	Size *int `form:"size" binding:"omitnil,min=1"`
}

// RunBatch removes up to size jobs and runs them concurrently
// (POST /jobs/batch?size=N)
func (h *Handler) RunBatch(c *gin.Context) {
	var params batchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be a positive integer"})
		return
	}

	size := 1
	if params.Size != nil {
		size = min(*params.Size, maxBatchSize)
	}

	results := h.queueSrv.Batch(c.Request.Context(), size)
	c.JSON(http.StatusOK, v1.NewJobResultList(results))
}

func writeQueueError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsEmptyWorkQueueError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		zap.S().Named("jobs_handler").Errorw("failed to evaluate head job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate head job"})
	}
}
