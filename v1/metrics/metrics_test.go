package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/milvus-go/v1/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		Address:                 ":0",
		EnableDefaultCollectors: false,
		ServiceName:             "test-service",
	})
}

func TestObserveOperationCountsByStatus(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "milvus",
		Operation: "Insert",
		Duration:  5 * time.Millisecond,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "milvus",
		Operation: "Insert",
		Duration:  5 * time.Millisecond,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "milvus",
		Operation: "Insert",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("Insert", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("Insert", "error")))
}

func TestObserveOperationRecordsDuration(t *testing.T) {
	m := newTestMetrics()

	m.ObserveOperation(observability.OperationContext{
		Component: "milvus",
		Operation: "Search",
		Duration:  20 * time.Millisecond,
	})

	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestServiceLabelAppliedToBuiltins(t *testing.T) {
	m := newTestMetrics()

	m.IncrementOperations("Insert", "success")

	expected := `
		# HELP operations_total Total number of vector store operations by outcome
		# TYPE operations_total counter
		operations_total{operation="Insert",service="test-service",status="success"} 1
	`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "operations_total"))
}

func TestSetConnectionReady(t *testing.T) {
	m := newTestMetrics()

	m.SetConnectionReady(true, "localhost:19530")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connectionReady.WithLabelValues("localhost:19530")))

	m.SetConnectionReady(false, "localhost:19530")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.connectionReady.WithLabelValues("localhost:19530")))
}

func TestRecordOperationDuration(t *testing.T) {
	m := newTestMetrics()

	m.RecordOperationDuration(time.Now().Add(-10*time.Millisecond), "DescribeTable")

	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestCreateCounterRegistersWithRegistry(t *testing.T) {
	m := newTestMetrics()

	counter := m.CreateCounter("inserted_rows_total", "Total number of vector rows inserted.", []string{"table"})
	counter.WithLabelValues("films").Add(256)

	assert.Equal(t, 256.0, testutil.ToFloat64(counter.WithLabelValues("films")))

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() == "inserted_rows_total" {
			found = true
		}
	}
	assert.True(t, found, "expected inserted_rows_total to be gathered from the registry")
}
