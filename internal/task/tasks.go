package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeGenerateThumbnail = "thumbnail:generate"
	TypeSweepOrphans      = "storage:sweep_orphans"
)

type GenerateThumbnailPayload struct {
	MediaID string `json:"media_id"`
}

// NewGenerateThumbnailTask creates an Asynq task for generating a media thumbnail by ID.
func NewGenerateThumbnailTask(mediaID string) (*asynq.Task, error) {
	p := GenerateThumbnailPayload{MediaID: mediaID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal generate-thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateThumbnail, data), nil
}

// ParseGenerateThumbnailPayload parses the task payload to GenerateThumbnailPayload.
func ParseGenerateThumbnailPayload(t *asynq.Task) (GenerateThumbnailPayload, error) {
	var p GenerateThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return GenerateThumbnailPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// NewSweepOrphansTask creates an Asynq task for deleting stored objects no
// database row references anymore.
func NewSweepOrphansTask() *asynq.Task {
	return asynq.NewTask(TypeSweepOrphans, nil)
}
