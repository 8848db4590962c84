package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBlogGenerate = "blog:generate"

// BlogPayload records who asked for a generation and when.
type BlogPayload struct {
	Source      string    `json:"source"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NewBlogGenerateTask builds a one-shot generation task. Failed generations
// are not retried; the next scheduled run tries again.
func NewBlogGenerateTask(payload BlogPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBlogGenerate, b)
	opts := []asynq.Option{
		asynq.MaxRetry(0),
		asynq.Timeout(2 * time.Minute),
	}
	return task, opts, nil
}

// ParseBlogPayload decodes a task payload. An empty payload is allowed.
func ParseBlogPayload(task *asynq.Task) (BlogPayload, error) {
	var p BlogPayload
	if len(task.Payload()) == 0 {
		return p, nil
	}
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
