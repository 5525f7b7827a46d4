package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"strings"

	"bp_analytics/internal/domain/entities"
	"bp_analytics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoProvider validates credentials against a DynamoDB users table.
//
// Table requirements:
//   - PK: username (string)
//
// This is the pluggable credential store the static provider stands in
// for when no table is configured.
type DynamoProvider struct {
	ddb       *dynamodb.Client
	tableName string
}

type userItem struct {
	Username string `dynamodbav:"username"`
	Password string `dynamodbav:"password"`
	Name     string `dynamodbav:"name"`
	Role     string `dynamodbav:"role"`
}

var _ interfaces.ICredentialProvider = (*DynamoProvider)(nil)

func NewDynamoProvider(ddb *dynamodb.Client, tableName string) *DynamoProvider {
	return &DynamoProvider{ddb: ddb, tableName: tableName}
}

// UsersTableFromEnv reads AUTH_USERS_TABLE; empty means the DynamoDB
// provider is not configured and the static provider should be used.
func UsersTableFromEnv() string {
	return strings.TrimSpace(os.Getenv("AUTH_USERS_TABLE"))
}

func (p *DynamoProvider) Validate(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	out, err := p.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	if subtle.ConstantTimeCompare([]byte(it.Password), []byte(password)) != 1 {
		return entities.User{}, nil
	}
	return entities.User{Username: it.Username, Name: it.Name, Role: it.Role}, nil
}
