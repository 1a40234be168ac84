package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kubev2v/dequeue/internal/models"
	"github.com/kubev2v/dequeue/pkg/collection"
)

type QueueService interface {
	Status() models.QueueStatus
	SetMode(mode collection.Mode)
	Clear()
	List() []models.Job
	Add(job models.Job) (models.Job, error)
	Peek(ctx context.Context) (models.JobResult, error)
	Poll(ctx context.Context) (models.JobResult, error)
	Batch(ctx context.Context, size int) []models.JobResult
	History() []models.JobResult
}

type Handler struct {
	queueSrv QueueService
}

func New(queueSrv QueueService) *Handler {
	return &Handler{queueSrv: queueSrv}
}

// RegisterHandlers wires every endpoint of the handler into router.
func RegisterHandlers(router gin.IRouter, h *Handler) {
	router.GET("/queue", h.GetQueueStatus)
	router.PUT("/queue/mode", h.SetQueueMode)
	router.DELETE("/queue", h.ClearQueue)

	router.GET("/jobs", h.ListJobs)
	router.POST("/jobs", h.AddJob)
	router.GET("/jobs/head", h.PeekJob)
	router.POST("/jobs/head", h.PollJob)
	router.POST("/jobs/batch", h.RunBatch)

	router.GET("/history", h.GetHistory)
}
