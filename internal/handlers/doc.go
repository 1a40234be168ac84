// Package handlers implements the HTTP API layer of the dequeue server.
//
// Handlers delegate to a QueueService and focus on request validation,
// response formatting and HTTP semantics. Routes are registered under
// /api/v1 by RegisterHandlers.
//
// # API Endpoints
//
// Queue Endpoints (queue.go):
//
//	┌────────┬─────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint    │ Description                              │
//	├────────┼─────────────┼──────────────────────────────────────────┤
//	│ GET    │ /queue      │ Queue size, mode and history size        │
//	│ PUT    │ /queue/mode │ Switch between fifo and filo             │
//	│ DELETE │ /queue      │ Drop every pending job                   │
//	│ GET    │ /history    │ Results of consumed jobs, oldest first   │
//	└────────┴─────────────┴──────────────────────────────────────────┘
//
// Job Endpoints (jobs.go):
//
//	┌────────┬────────────────────┬───────────────────────────────────┐
//	│ Method │ Endpoint           │ Description                       │
//	├────────┼────────────────────┼───────────────────────────────────┤
//	│ GET    │ /jobs              │ Pending jobs in insertion order   │
//	│ POST   │ /jobs              │ Queue a job                       │
//	│ GET    │ /jobs/head         │ Run the head job once and show it │
//	│ POST   │ /jobs/head         │ Remove the head job (its result)  │
//	│ POST   │ /jobs/batch?size=N │ Run up to N jobs concurrently     │
//	└────────┴────────────────────┴───────────────────────────────────┘
//
// GET /jobs/head runs the head job the first time it is called. Later calls
// return the same result until the job is removed, so a peek followed by
// POST /jobs/head never runs the job twice. A batch always runs the jobs it
// takes, even one whose result was already shown by a peek.
//
// A failing job is not an HTTP error: its result carries the error message.
//
// # Error Handling
//
//	{ "error": "error message" }
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ Validation error            │ 400    │ Invalid job, mode or size    │
//	│ EmptyWorkQueueError         │ 404    │ Peek or poll on empty queue  │
//	│ Internal error              │ 500    │ Unexpected service errors    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
package handlers
