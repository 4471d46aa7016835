package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"todo-list-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	router := lambda.NewRouter(container.TodoService)
	resp := router.Route(ctx, lambda.FromAPIGatewayRequest(event))

	return lambda.ToAPIGatewayResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
