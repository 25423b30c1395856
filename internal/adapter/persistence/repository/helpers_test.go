package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime_SortsLexicographically(t *testing.T) {
	a := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)
	c := a.Add(10 * time.Second)

	assert.Less(t, formatTime(a), formatTime(b))
	assert.Less(t, formatTime(b), formatTime(c))
	assert.True(t, parseTime(formatTime(b)).Equal(b))
}

func TestParseTime_AcceptsRFC3339(t *testing.T) {
	got := parseTime("2026-03-02T08:00:00Z")
	assert.True(t, got.Equal(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
	assert.True(t, parseTime("").IsZero())
	assert.Nil(t, parseTimePtr(""))
}

func TestTransactionConditionFailed(t *testing.T) {
	err := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
	assert.True(t, transactionConditionFailed(err, 0))
	assert.False(t, transactionConditionFailed(err, 1))
	assert.False(t, transactionConditionFailed(err, 5))
	assert.False(t, transactionConditionFailed(errors.New("boom"), 0))
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "e-1#o-1", lockKey("e-1", "o-1"))
}
