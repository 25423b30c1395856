package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	QuotesOrderIDIndex     = "order_id-index"
)

type quoteLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type quoteItem struct {
	ID         string          `dynamodbav:"id"`
	Number     string          `dynamodbav:"number"`
	OrderID    string          `dynamodbav:"order_id"`
	Status     string          `dynamodbav:"status"`
	IssueDate  string          `dynamodbav:"issue_date"`
	ExpiryDate string          `dynamodbav:"expiry_date"`
	Items      []quoteLineItem `dynamodbav:"items"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	Subtotal   string          `dynamodbav:"subtotal"`
	TaxRate    string          `dynamodbav:"tax_rate"`
	TaxAmount  string          `dynamodbav:"tax_amount"`
	Total      string          `dynamodbav:"total"`
	CreatedAt  string          `dynamodbav:"created_at"`
	UpdatedAt  string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Line items are embedded as a list attribute.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", DefaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// ListByOrderID returns the quotes of an order, newest first.
func (r *QuoteDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Quote, error) {
	items := make([]entities.Quote, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuotesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuoteStatus, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	from []entities.QuoteStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	cond := "attribute_exists(#id)"
	if len(from) > 0 {
		placeholders := make([]string, 0, len(from))
		for i, s := range from {
			key := fmt.Sprintf(":from%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		cond += " AND #status IN (" + strings.Join(placeholders, ", ") + ")"
		names = mergeNames(names, map[string]string{"#status": "status"})
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Items))
	for _, li := range q.Items {
		lines = append(lines, quoteLineItem{
			Description: li.Description,
			Quantity:    floatToString(li.Quantity),
			UnitPrice:   floatToString(li.UnitPrice),
			Total:       floatToString(li.Total),
		})
	}
	return quoteItem{
		ID:         q.ID,
		Number:     q.Number,
		OrderID:    q.OrderID,
		Status:     string(q.Status),
		IssueDate:  formatTime(q.IssueDate),
		ExpiryDate: formatTime(q.ExpiryDate),
		Items:      lines,
		Notes:      q.Notes,
		Subtotal:   floatToString(q.Subtotal),
		TaxRate:    floatToString(q.TaxRate),
		TaxAmount:  floatToString(q.TaxAmount),
		Total:      floatToString(q.Total),
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	lines := make([]entities.QuoteItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.QuoteItem{
			Description: li.Description,
			Quantity:    parseFloat(li.Quantity),
			UnitPrice:   parseFloat(li.UnitPrice),
			Total:       parseFloat(li.Total),
		})
	}
	return entities.Quote{
		ID:         it.ID,
		Number:     it.Number,
		OrderID:    it.OrderID,
		Status:     entities.QuoteStatus(it.Status),
		IssueDate:  parseTime(it.IssueDate),
		ExpiryDate: parseTime(it.ExpiryDate),
		Items:      lines,
		Notes:      it.Notes,
		Subtotal:   parseFloat(it.Subtotal),
		TaxRate:    parseFloat(it.TaxRate),
		TaxAmount:  parseFloat(it.TaxAmount),
		Total:      parseFloat(it.Total),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
