// Package dynamo implements the todo repository against an AWS DynamoDB
// table. The table uses a single string partition key named "id".
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
)

// API is the subset of the DynamoDB client used by the repository
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// TodoRepository is a DynamoDB-backed implementation of repositories.TodoRepository
type TodoRepository struct {
	client API
	table  string
}

// NewTodoRepository creates a DynamoDB todo repository for the given table
func NewTodoRepository(client API, table string) *TodoRepository {
	return &TodoRepository{
		client: client,
		table:  table,
	}
}

// Put inserts a new todo record with an unconditional write
func (r *TodoRepository) Put(ctx context.Context, todo *models.Todo) error {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return repositories.NewRepositoryError("put", todo.ID, fmt.Errorf("failed to marshal todo: %w", err))
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("put", todo.ID, err)
	}

	return nil
}

// Update atomically overwrites text, checked and updatedAt for an existing
// record and returns the post-update attributes. The write is guarded by an
// attribute_exists condition on the key so a missing ID surfaces as a
// not-found error instead of upserting a partial record.
func (r *TodoRepository) Update(ctx context.Context, id, text string, checked bool, updatedAt int64) (*models.Todo, error) {
	update := expression.
		Set(expression.Name("text"), expression.Value(text)).
		Set(expression.Name("checked"), expression.Value(checked)).
		Set(expression.Name("updatedAt"), expression.Value(updatedAt))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return nil, repositories.NewRepositoryError("update", id, fmt.Errorf("failed to build update expression: %w", err))
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       todoKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return nil, repositories.NotFoundError("update", id)
		}
		return nil, repositories.NewRepositoryError("update", id, err)
	}

	var todo models.Todo
	if err := attributevalue.UnmarshalMap(out.Attributes, &todo); err != nil {
		return nil, repositories.NewRepositoryError("update", id, fmt.Errorf("failed to unmarshal attributes: %w", err))
	}

	return &todo, nil
}

// GetByID retrieves a todo by its ID
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            todoKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", id, err)
	}

	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError("get", id)
	}

	var todo models.Todo
	if err := attributevalue.UnmarshalMap(out.Item, &todo); err != nil {
		return nil, repositories.NewRepositoryError("get", id, fmt.Errorf("failed to unmarshal item: %w", err))
	}

	return &todo, nil
}

// Close is a no-op; the underlying client holds no persistent connections
func (r *TodoRepository) Close() error {
	return nil
}

func todoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
