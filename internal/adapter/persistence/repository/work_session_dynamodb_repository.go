package repository

import (
	"context"
	"sort"
	"time"

	"carrozzeria/internal/domain/entities"
	"carrozzeria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultWorkSessionsTableName     = "work_sessions"
	DefaultWorkSessionLocksTableName = "work_session_locks"
	WorkSessionsOrderIDIndex         = "order_id-index"
	WorkSessionsEmployeeIDIndex      = "employee_id-index"
)

type workSessionItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id"`
	EmployeeID      string `dynamodbav:"employee_id"`
	StartTime       string `dynamodbav:"start_time"`
	EndTime         string `dynamodbav:"end_time,omitempty"`
	DurationMinutes *int   `dynamodbav:"duration_minutes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type workSessionLockItem struct {
	LockKey    string `dynamodbav:"lock_key"`
	SessionID  string `dynamodbav:"session_id"`
	EmployeeID string `dynamodbav:"employee_id"`
	OrderID    string `dynamodbav:"order_id"`
	StartTime  string `dynamodbav:"start_time"`
	CreatedAt  string `dynamodbav:"created_at,omitempty"`
}

// WorkSessionDynamoRepository persists WorkSession entities in DynamoDB.
//
// Table requirements:
//   - work_sessions PK: id (string)
//   - GSI: order_id-index (PK: order_id, SK: start_time)
//   - GSI: employee_id-index (PK: employee_id, SK: start_time)
//   - work_session_locks PK: lock_key (string, "employee#order")
//
// A lock item exists exactly while a session is open for the pair. Opening and
// closing write the session and the lock in one transaction.
type WorkSessionDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	locksTable string
}

var _ interfaces.IWorkSessionRepository = (*WorkSessionDynamoRepository)(nil)

func NewWorkSessionDynamoRepository(ddb *dynamodb.Client) *WorkSessionDynamoRepository {
	return &WorkSessionDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("WORK_SESSIONS_TABLE", DefaultWorkSessionsTableName),
		locksTable: getenvDefault("WORK_SESSION_LOCKS_TABLE", DefaultWorkSessionLocksTableName),
	}
}

func lockKey(employeeID, orderID string) string {
	return employeeID + "#" + orderID
}

func (r *WorkSessionDynamoRepository) Open(ctx context.Context, s entities.WorkSession) (entities.WorkSession, error) {
	sessionAV, err := attributevalue.MarshalMap(toWorkSessionItem(s))
	if err != nil {
		return entities.WorkSession{}, err
	}
	lockAV, err := attributevalue.MarshalMap(workSessionLockItem{
		LockKey:    lockKey(s.EmployeeID, s.OrderID),
		SessionID:  s.ID,
		EmployeeID: s.EmployeeID,
		OrderID:    s.OrderID,
		StartTime:  formatTime(s.StartTime),
		CreatedAt:  formatTime(s.CreatedAt),
	})
	if err != nil {
		return entities.WorkSession{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.locksTable),
				Item:                     lockAV,
				ConditionExpression:      aws.String("attribute_not_exists(#lk)"),
				ExpressionAttributeNames: map[string]string{"#lk": "lock_key"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     sessionAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 0) {
			return entities.WorkSession{}, interfaces.ErrOpenSessionConflict
		}
		return entities.WorkSession{}, err
	}
	return s, nil
}

func (r *WorkSessionDynamoRepository) Close(ctx context.Context, id string, end time.Time, durationMinutes int) (entities.WorkSession, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.WorkSession{}, err
	}
	if current.ID == "" {
		return entities.WorkSession{}, nil
	}
	if !current.IsOpen() {
		return entities.WorkSession{}, interfaces.ErrSessionNotOpen
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: id},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#end)"),
				UpdateExpression:    aws.String("SET #end = :end, #dur = :dur"),
				ExpressionAttributeNames: map[string]string{
					"#id":  "id",
					"#end": "end_time",
					"#dur": "duration_minutes",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":end": &types.AttributeValueMemberS{Value: formatTime(end)},
					":dur": &types.AttributeValueMemberN{Value: itoa(durationMinutes)},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.locksTable),
				Key: map[string]types.AttributeValue{
					"lock_key": &types.AttributeValueMemberS{Value: lockKey(current.EmployeeID, current.OrderID)},
				},
				ConditionExpression:       aws.String("#sid = :sid"),
				ExpressionAttributeNames:  map[string]string{"#sid": "session_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":sid": &types.AttributeValueMemberS{Value: id}},
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err, 0) || transactionConditionFailed(err, 1) {
			return entities.WorkSession{}, interfaces.ErrSessionNotOpen
		}
		return entities.WorkSession{}, err
	}

	end = end.UTC()
	current.EndTime = &end
	current.DurationMinutes = &durationMinutes
	return current, nil
}

func (r *WorkSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkSession{}, nil
	}

	var it workSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkSession{}, err
	}
	return fromWorkSessionItem(it), nil
}

// FindOpen resolves the open session through its lock item.
func (r *WorkSessionDynamoRepository) FindOpen(ctx context.Context, employeeID, orderID string) (entities.WorkSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locksTable),
		Key: map[string]types.AttributeValue{
			"lock_key": &types.AttributeValueMemberS{Value: lockKey(employeeID, orderID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkSession{}, nil
	}

	var lock workSessionLockItem
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return entities.WorkSession{}, err
	}
	return r.GetByID(ctx, lock.SessionID)
}

// ListOpen reads the lock table, which holds one item per open session.
func (r *WorkSessionDynamoRepository) ListOpen(ctx context.Context) ([]entities.WorkSession, error) {
	items := make([]entities.WorkSession, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.locksTable),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			var lock workSessionLockItem
			if err := attributevalue.UnmarshalMap(av, &lock); err != nil {
				return nil, err
			}
			items = append(items, entities.WorkSession{
				ID:         lock.SessionID,
				OrderID:    lock.OrderID,
				EmployeeID: lock.EmployeeID,
				StartTime:  parseTime(lock.StartTime),
				CreatedAt:  parseTime(lock.CreatedAt),
			})
		}
	}
	sortSessionsByStart(items)
	return items, nil
}

func (r *WorkSessionDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.WorkSession, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(WorkSessionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
}

func (r *WorkSessionDynamoRepository) ListStartedBetween(ctx context.Context, from, to time.Time, employeeID string) ([]entities.WorkSession, error) {
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: formatTime(from)},
		":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
	}
	names := map[string]string{"#start": "start_time"}

	if employeeID != "" {
		values[":eid"] = &types.AttributeValueMemberS{Value: employeeID}
		return r.query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(WorkSessionsEmployeeIDIndex),
			KeyConditionExpression:    aws.String("employee_id = :eid AND #start BETWEEN :from AND :to"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	}
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#start BETWEEN :from AND :to"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
}

func (r *WorkSessionDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.WorkSession, error) {
	items := make([]entities.WorkSession, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if err := appendWorkSessions(&items, page.Items); err != nil {
			return nil, err
		}
	}
	sortSessionsByStart(items)
	return items, nil
}

func (r *WorkSessionDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.WorkSession, error) {
	items := make([]entities.WorkSession, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if err := appendWorkSessions(&items, page.Items); err != nil {
			return nil, err
		}
	}
	sortSessionsByStart(items)
	return items, nil
}

func appendWorkSessions(dst *[]entities.WorkSession, raw []map[string]types.AttributeValue) error {
	for _, av := range raw {
		var it workSessionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return err
		}
		*dst = append(*dst, fromWorkSessionItem(it))
	}
	return nil
}

func sortSessionsByStart(items []entities.WorkSession) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.Before(items[j].StartTime)
	})
}

func toWorkSessionItem(s entities.WorkSession) workSessionItem {
	return workSessionItem{
		ID:              s.ID,
		OrderID:         s.OrderID,
		EmployeeID:      s.EmployeeID,
		StartTime:       formatTime(s.StartTime),
		EndTime:         formatTimePtr(s.EndTime),
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       formatTime(s.CreatedAt),
	}
}

func fromWorkSessionItem(it workSessionItem) entities.WorkSession {
	return entities.WorkSession{
		ID:              it.ID,
		OrderID:         it.OrderID,
		EmployeeID:      it.EmployeeID,
		StartTime:       parseTime(it.StartTime),
		EndTime:         parseTimePtr(it.EndTime),
		DurationMinutes: it.DurationMinutes,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
