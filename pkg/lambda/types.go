package lambda

import (
	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
	PathParams map[string]string `json:"path_params"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGatewayRequest converts an API Gateway proxy event into a generic request
func FromAPIGatewayRequest(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:     event.HTTPMethod,
		Path:       event.Path,
		Headers:    event.Headers,
		Body:       []byte(event.Body),
		PathParams: event.PathParameters,
	}
}

// ToAPIGatewayResponse converts a generic response into an API Gateway proxy response
func ToAPIGatewayResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}
