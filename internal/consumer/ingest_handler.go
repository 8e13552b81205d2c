package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/runhub/activity-pipeline/internal/ingest"
	"github.com/runhub/activity-pipeline/internal/processing"
)

// EventActivityRecorded is published by platform connectors once a raw
// activity has been fetched and parsed.
const EventActivityRecorded = "activity.recorded"

// Ingestor runs the standardization pipeline for one raw activity.
type Ingestor interface {
	Ingest(context.Context, ingest.RawActivity) (ingest.Outcome, error)
}

// IngestHandler decodes activity.recorded payloads and feeds the pipeline.
type IngestHandler struct {
	pipeline Ingestor
}

// NewIngestHandler constructs a handler backed by the provided pipeline.
func NewIngestHandler(pipeline Ingestor) *IngestHandler {
	return &IngestHandler{pipeline: pipeline}
}

// Handle processes one decoded Kafka message. Events other than
// activity.recorded are acknowledged without action so that mixed topics do
// not wedge the consumer.
func (h *IngestHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != EventActivityRecorded {
		return nil
	}

	var raw ingest.RawActivity
	if err := json.Unmarshal(msg.Payload, &raw); err != nil {
		return fmt.Errorf("decode raw activity: %w", err)
	}

	// The message header wins over the payload when both name a platform.
	if msg.Platform != "" {
		raw.Platform = processing.Platform(msg.Platform)
	}

	if _, err := h.pipeline.Ingest(ctx, raw); err != nil {
		return fmt.Errorf("ingest activity (platform=%s): %w", raw.Platform, err)
	}
	return nil
}
