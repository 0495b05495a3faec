package models

// ResponseEnvelope is the API Gateway proxy response returned by the function.
// Unlike events.APIGatewayProxyResponse, isBase64Encoded is always emitted.
type ResponseEnvelope struct {
	IsBase64Encoded   bool                `json:"isBase64Encoded"`
	StatusCode        int                 `json:"statusCode"`
	Headers           map[string]string   `json:"headers"`
	MultiValueHeaders map[string][]string `json:"multiValueHeaders"`
	Body              string              `json:"body"`
}

type MessageBody struct {
	Message string `json:"message"`
}
