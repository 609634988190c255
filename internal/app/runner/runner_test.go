package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	dmodels "github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/report"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/service/adjustment"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) RetrieveSubscriber(ctx context.Context, msisdn string) ([]dmodels.ResultPair, error) {
	args := m.Called(ctx, msisdn)
	pairs, _ := args.Get(0).([]dmodels.ResultPair)
	return pairs, args.Error(1)
}

type mockMainAdjuster struct {
	mock.Mock
}

func (m *mockMainAdjuster) AdjustMainBalance(ctx context.Context, msisdn string, amount models.Money, direction consts.Direction) (string, models.Money, error) {
	args := m.Called(ctx, msisdn, amount, direction)
	return args.String(0), args.Get(1).(models.Money), args.Error(2)
}

type mockBucketAdjuster struct {
	mock.Mock
}

func (m *mockBucketAdjuster) AdjustBucketBalance(ctx context.Context, msisdn string, amount models.Money, bucketID string, direction consts.Direction) (string, error) {
	args := m.Called(ctx, msisdn, amount, bucketID, direction)
	return args.String(0), args.Error(1)
}

func activePairs(msisdn string) []dmodels.ResultPair {
	return []dmodels.ResultPair{
		{Name: "QueryAccount", Value: "SUCCESS"},
		{Name: "Account ID", Value: msisdn},
		{Name: "Account Type", Value: "PREPAID"},
		{Name: "Language", Value: "EN"},
		{Name: "Account State", Value: "STS_ACTIVE"},
		{Name: "Activation Date", Value: "20200101"},
		{Name: "Expiry Date", Value: "20300101"},
		{Name: "Main Balance", Value: "150.00"},
		{Name: "QueryBundle", Value: "SUCCESS"},
	}
}

func newTestRunner(t *testing.T, querier *mockQuerier, main *mockMainAdjuster, bucket *mockBucketAdjuster) (*Runner, *report.Writer) {
	t.Helper()
	writer, err := report.NewWriter(t.TempDir(), "batch", time.Now())
	require.NoError(t, err)
	engine := adjustment.NewEngine(main, bucket, nil)
	r := New(querier, engine, writer)
	r.echo = func(string) {}
	return r, writer
}

func reportLines(t *testing.T, writer *report.Writer) string {
	t.Helper()
	data, err := os.ReadFile(writer.Path())
	if errors.Is(err, os.ErrNotExist) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

func TestRunInlineCommand(t *testing.T) {
	querier := new(mockQuerier)
	main := new(mockMainAdjuster)
	bucket := new(mockBucketAdjuster)
	r, writer := newTestRunner(t, querier, main, bucket)

	querier.On("RetrieveSubscriber", mock.Anything, "2348011234567").
		Return(activePairs("2348011234567"), nil)
	main.On("AdjustMainBalance", mock.Anything, "2348011234567", models.Money(500000), consts.DirectionDecrement).
		Return("SUCCESS", models.Money(1000000), nil)

	err := r.Run(context.Background(), "2348011234567 MAIN -50")

	require.NoError(t, err)
	assert.Equal(t,
		"2348011234567: main debiting SUCCESS, current main balance -> NGN100.0\n",
		reportLines(t, writer))
	main.AssertExpectations(t)
}

func TestRunFileSkipsBlankLinesAndIsolatesFailures(t *testing.T) {
	querier := new(mockQuerier)
	main := new(mockMainAdjuster)
	bucket := new(mockBucketAdjuster)
	r, writer := newTestRunner(t, querier, main, bucket)

	path := filepath.Join(t.TempDir(), "batch.txt")
	content := "2348011111111 MAIN -50\n\n   \n2348022222222 MAIN -50\n2348033333333 MAIN -50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	querier.On("RetrieveSubscriber", mock.Anything, "2348011111111").
		Return(activePairs("2348011111111"), nil)
	// The second subscriber's lookup fails; the batch keeps going.
	querier.On("RetrieveSubscriber", mock.Anything, "2348022222222").
		Return(nil, errors.New("connection reset"))
	querier.On("RetrieveSubscriber", mock.Anything, "2348033333333").
		Return(activePairs("2348033333333"), nil)
	main.On("AdjustMainBalance", mock.Anything, "2348011111111", models.Money(500000), consts.DirectionDecrement).
		Return("SUCCESS", models.Money(1000000), nil)
	main.On("AdjustMainBalance", mock.Anything, "2348033333333", models.Money(500000), consts.DirectionDecrement).
		Return("SUCCESS", models.Money(250000), nil)

	err := r.Run(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t,
		"2348011111111: main debiting SUCCESS, current main balance -> NGN100.0\n"+
			"2348033333333: main debiting SUCCESS, current main balance -> NGN25.0\n",
		reportLines(t, writer))
	querier.AssertNumberOfCalls(t, "RetrieveSubscriber", 3)
}

func TestRunBlankCommandWritesNothing(t *testing.T) {
	querier := new(mockQuerier)
	r, writer := newTestRunner(t, querier, new(mockMainAdjuster), new(mockBucketAdjuster))

	err := r.Run(context.Background(), "   \t  ")

	require.NoError(t, err)
	assert.Empty(t, reportLines(t, writer))
	querier.AssertNotCalled(t, "RetrieveSubscriber", mock.Anything, mock.Anything)
}

// The first token is always taken as the identifier, even when it looks like
// a marker keyword; the lookup goes out against the prefixed token.
func TestRunFirstTokenBecomesIdentifier(t *testing.T) {
	querier := new(mockQuerier)
	r, writer := newTestRunner(t, querier, new(mockMainAdjuster), new(mockBucketAdjuster))

	querier.On("RetrieveSubscriber", mock.Anything, "234MAIN").
		Return([]dmodels.ResultPair{
			{Name: "QueryAccount", Value: "FAILURE"},
			{Name: "Account ID", Value: "234MAIN"},
		}, nil)

	err := r.Run(context.Background(), "MAIN -50")

	require.NoError(t, err)
	assert.Equal(t, "234MAIN: not on IN\n", reportLines(t, writer))
	querier.AssertExpectations(t)
}

func TestRunShortRecordReportsNotOnIN(t *testing.T) {
	querier := new(mockQuerier)
	r, writer := newTestRunner(t, querier, new(mockMainAdjuster), new(mockBucketAdjuster))

	querier.On("RetrieveSubscriber", mock.Anything, "2348011234567").
		Return([]dmodels.ResultPair{
			{Name: "QueryAccount", Value: "FAILURE"},
			{Name: "Account ID", Value: "2348011234567"},
		}, nil)

	err := r.Run(context.Background(), "2348011234567 MAIN -50")

	require.NoError(t, err)
	assert.Equal(t, "2348011234567: not on IN\n", reportLines(t, writer))
}

func TestRunMissingFileTreatedAsInlineCommand(t *testing.T) {
	querier := new(mockQuerier)
	r, writer := newTestRunner(t, querier, new(mockMainAdjuster), new(mockBucketAdjuster))

	querier.On("RetrieveSubscriber", mock.Anything, "2348011234567").
		Return(activePairs("2348011234567"), nil)

	// Looks like a path but does not exist, so it is parsed as a command. The
	// command has no markers, the record is full, nothing is reported.
	err := r.Run(context.Background(), "2348011234567")

	require.NoError(t, err)
	assert.Empty(t, reportLines(t, writer))
}
