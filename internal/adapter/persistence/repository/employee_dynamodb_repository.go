package repository

import (
	"context"
	"sort"
	"strings"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultEmployeesTableName = "employees"

type employeeItem struct {
	ID         string `dynamodbav:"id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	Role       string `dynamodbav:"role"`
	HourlyRate string `dynamodbav:"hourly_rate"`
	Active     bool   `dynamodbav:"active"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// EmployeeDynamoRepository persists Employee entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The hourly rate is kept as a decimal string so it round-trips exactly.
type EmployeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb *dynamodb.Client) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYEES_TABLE", DefaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.Employee, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if activeOnly {
		in.FilterExpression = aws.String("#active = :true")
		in.ExpressionAttributeNames = map[string]string{"#active": "active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	items := make([]entities.Employee, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it employeeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEmployeeItem(it))
		}
	}
	sortEmployees(items)
	return items, nil
}

// Update replaces the stored employee. It returns a zero value when the
// employee no longer exists.
func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	av, err := attributevalue.MarshalMap(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}
	return e, nil
}

func sortEmployees(items []entities.Employee) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].LastName), strings.ToLower(items[j].LastName)
		if a != b {
			return a < b
		}
		return strings.ToLower(items[i].FirstName) < strings.ToLower(items[j].FirstName)
	})
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Role:       string(e.Role),
		HourlyRate: floatToString(e.HourlyRate),
		Active:     e.Active,
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTime(e.UpdatedAt),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:         it.ID,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		Role:       entities.EmployeeRole(it.Role),
		HourlyRate: parseFloat(it.HourlyRate),
		Active:     it.Active,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
