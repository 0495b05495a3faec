package main

import (
	"context"
	"encoding/json"
	"fmt"
	"ok-boomer/internal/models"
	"ok-boomer/internal/utils"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	logger  *logrus.Entry
	builder utils.ResponseBuilder
}

func NewHandler(logger *logrus.Entry, builder utils.ResponseBuilder) *Handler {
	return &Handler{
		logger:  logger,
		builder: builder,
	}
}

// EventHandler answers every invocation with the same envelope. The event is
// never decoded, so any JSON value is accepted.
func (h *Handler) EventHandler(ctx context.Context, event json.RawMessage) (models.ResponseEnvelope, error) {
	fields := logrus.Fields{
		"event_size": len(event),
	}
	if ctx != nil {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields["request_id"] = lc.AwsRequestID
		}
	}
	h.logger.WithFields(fields).Info("Processing Lambda request")

	envelope, err := h.builder.Build()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build response")
		return models.ResponseEnvelope{}, fmt.Errorf("failed to build response: %w", err)
	}

	return envelope, nil
}
