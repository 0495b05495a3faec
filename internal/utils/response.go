package utils

import "ok-boomer/internal/models"

// ResponseBuilder builds the envelope returned for every invocation
type ResponseBuilder interface {
	Build() (models.ResponseEnvelope, error)
}
