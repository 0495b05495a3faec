package response

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"ok-boomer/internal/models"
	"ok-boomer/internal/utils"

	"gopkg.in/yaml.v2"
)

//go:embed response.yaml
var responseYAML []byte

type Definition struct {
	StatusCode      int               `yaml:"status_code"`
	IsBase64Encoded bool              `yaml:"is_base64_encoded"`
	Headers         map[string]string `yaml:"headers"`
	Body            BodyDefinition    `yaml:"body"`
}

type BodyDefinition struct {
	Message string `yaml:"message"`
}

// LoadDefinition parses the response definition compiled into the binary.
func LoadDefinition() (Definition, error) {
	return ParseDefinition(responseYAML)
}

func ParseDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("error parsing response yaml: %w", err)
	}

	if http.StatusText(def.StatusCode) == "" {
		return Definition{}, fmt.Errorf("invalid status code %d", def.StatusCode)
	}
	if def.Body.Message == "" {
		return Definition{}, errors.New("response message is empty")
	}

	return def, nil
}

type builder struct {
	def Definition
}

func NewBuilder(def Definition) utils.ResponseBuilder {
	headers := make(map[string]string, len(def.Headers))
	for k, v := range def.Headers {
		headers[k] = v
	}
	def.Headers = headers

	return &builder{
		def: def,
	}
}

// Build returns a new envelope on every call. Maps are never shared between
// envelopes.
func (b *builder) Build() (models.ResponseEnvelope, error) {
	body, err := MarshalBody(models.MessageBody{Message: b.def.Body.Message})
	if err != nil {
		return models.ResponseEnvelope{}, err
	}

	headers := make(map[string]string, len(b.def.Headers))
	for k, v := range b.def.Headers {
		headers[k] = v
	}

	return models.ResponseEnvelope{
		IsBase64Encoded:   b.def.IsBase64Encoded,
		StatusCode:        b.def.StatusCode,
		Headers:           headers,
		MultiValueHeaders: map[string][]string{},
		Body:              body,
	}, nil
}

// MarshalBody serializes the body as {"message": "..."}, with a space after
// the colon.
func MarshalBody(body models.MessageBody) (string, error) {
	message, err := json.Marshal(body.Message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}
	return fmt.Sprintf(`{"message": %s}`, message), nil
}
