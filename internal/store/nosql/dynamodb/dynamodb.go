package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/zeebo/errs"
)

type dynamoClient interface {
	Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type Client struct {
	DynamoDBClient dynamoClient
}

func NewDynamoDBClient(ctx context.Context, region string) (Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return Client{}, errs.Wrap(err)
	}

	return Client{
		DynamoDBClient: dynamodb.NewFromConfig(cfg),
	}, nil
}

func (c Client) dynamodb() (dynamoClient, error) {
	if c.DynamoDBClient == nil {
		return nil, errs.New("there is no DynamoDBClient defined")
	}

	return c.DynamoDBClient, nil
}

func (c Client) Scan(ctx context.Context, table string) ([]map[string]any, error) {
	dynamo, err := c.dynamodb()
	if err != nil {
		return nil, err
	}

	p := dynamodb.ScanInput{
		TableName: aws.String(table),
	}

	res, err := dynamo.Scan(ctx, &p)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	resConv := make([]map[string]any, 0)
	err = attributevalue.UnmarshalListOfMaps(res.Items, &resConv)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return resConv, nil
}

func (c Client) GetItem(ctx context.Context, table string, k map[string]any) (map[string]any, error) {
	dynamo, err := c.dynamodb()
	if err != nil {
		return nil, err
	}

	key, err := attributevalue.MarshalMap(k)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	ps := &dynamodb.GetItemInput{
		Key:       key,
		TableName: aws.String(table),
	}

	res, err := dynamo.GetItem(ctx, ps)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	resConv := make(map[string]any)
	err = attributevalue.UnmarshalMap(res.Item, &resConv)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return resConv, nil
}

// PutItem writes item as-is, replacing any existing entry with the same key.
func (c Client) PutItem(ctx context.Context, table string, item any) error {
	dynamo, err := c.dynamodb()
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return errs.Wrap(err)
	}

	ps := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(table),
	}

	_, err = dynamo.PutItem(ctx, ps)
	return errs.Wrap(err)
}
