package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TableIndex struct {
	Name    string
	HashKey string
	SortKey string
}

type TableSpec struct {
	Name    string
	HashKey string
	Indexes []TableIndex
}

// DynamoTables lists the tables the service needs, honouring the *_TABLE
// overrides read by the repositories.
func DynamoTables() []TableSpec {
	return []TableSpec{
		{
			Name:    getenvDefault("WORK_SESSIONS_TABLE", "work_sessions"),
			HashKey: "id",
			Indexes: []TableIndex{
				{Name: "order_id-index", HashKey: "order_id", SortKey: "start_time"},
				{Name: "employee_id-index", HashKey: "employee_id", SortKey: "start_time"},
			},
		},
		{Name: getenvDefault("WORK_SESSION_LOCKS_TABLE", "work_session_locks"), HashKey: "lock_key"},
		{Name: getenvDefault("EMPLOYEES_TABLE", "employees"), HashKey: "id"},
		{Name: getenvDefault("WORK_ORDERS_TABLE", "work_orders"), HashKey: "id"},
		{
			Name:    getenvDefault("QUOTES_TABLE", "quotes"),
			HashKey: "id",
			Indexes: []TableIndex{{Name: "order_id-index", HashKey: "order_id"}},
		},
		{Name: getenvDefault("COUNTERS_TABLE", "counters"), HashKey: "name"},
		{
			Name:    getenvDefault("QUOTE_PAYMENTS_TABLE", "quote_payments"),
			HashKey: "id",
			Indexes: []TableIndex{{Name: "quote_id-index", HashKey: "quote_id"}},
		},
	}
}

// CreateTableInput builds the on-demand CreateTable request for spec.
func (spec TableSpec) CreateTableInput() *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{spec.HashKey: {}}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.HashKey), KeyType: types.KeyTypeHash},
		},
	}
	for _, idx := range spec.Indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.HashKey] = struct{}{}
		if idx.SortKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.SortKey), KeyType: types.KeyTypeRange})
			attrs[idx.SortKey] = struct{}{}
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}

// EnsureDynamoTables creates missing tables. Existing tables are left as is.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range DynamoTables() {
		_, err := ddb.CreateTable(ctx, spec.CreateTableInput())
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[migrate][dynamodb] table exists table=%s", spec.Name)
				continue
			}
			return err
		}
		log.Printf("[migrate][dynamodb] created table=%s", spec.Name)
	}
	return nil
}
