package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/metrics"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/models"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/store"
)

var tables = Tables{Leads: "leads", EarlyUsers: "early_users"}

func newService(t *testing.T, inserter store.Inserter, timeout time.Duration) (SubmissionService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.NewSubmissionMetrics(prometheus.NewRegistry())
	return NewSubmissionService(inserter, tables, timeout, m, zap.New(core)), logs
}

func TestSubmitLead_InsertsOnce(t *testing.T) {
	mem := store.NewMemoryStore()
	svc, _ := newService(t, mem, time.Second)

	err := svc.SubmitLead(context.Background(), models.Lead{BusinessName: "Joe's Plumbing", Email: "joe@example.com"})
	require.NoError(t, err)

	rows := mem.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "leads", rows[0].Collection)
	assert.Equal(t, map[string]any{
		"business_name": "Joe's Plumbing",
		"email":         "joe@example.com",
		"phone":         nil,
		"source":        nil,
	}, rows[0].Record)
}

func TestSubmitLead_NoDeduplication(t *testing.T) {
	mem := store.NewMemoryStore()
	svc, _ := newService(t, mem, 0)
	lead := models.Lead{BusinessName: "Joe's Plumbing", Email: "joe@example.com"}

	require.NoError(t, svc.SubmitLead(context.Background(), lead))
	require.NoError(t, svc.SubmitLead(context.Background(), lead))

	assert.Equal(t, 2, mem.Count("leads"))
}

func TestSubmitLead_InsertFailure(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.FailWith(errors.New("relation \"leads\" does not exist"))
	svc, logs := newService(t, mem, time.Second)

	err := svc.SubmitLead(context.Background(), models.Lead{BusinessName: "b", Email: "joe@example.com"})
	assert.ErrorIs(t, err, ErrInsertFailed)
	assert.Equal(t, 1, mem.Count("leads"))

	failures := logs.FilterMessage("Store insert failed").All()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].ContextMap()["error"], "does not exist")
}

func TestSubmitEarlyUser(t *testing.T) {
	mem := store.NewMemoryStore()
	svc, logs := newService(t, mem, time.Second)

	err := svc.SubmitEarlyUser(context.Background(), models.EarlyUser{FirstName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	rows := mem.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "early_users", rows[0].Collection)
	assert.Equal(t, "Ada", rows[0].Record["first_name"])
	assert.Nil(t, rows[0].Record["last_name"])

	// the address itself never reaches the logs
	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			assert.NotEqual(t, "ada@example.com", v)
		}
	}
}

type slowInserter struct{}

func (slowInserter) Insert(ctx context.Context, collection string, record map[string]any) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestSubmit_Timeout(t *testing.T) {
	svc, _ := newService(t, slowInserter{}, 10*time.Millisecond)

	err := svc.SubmitEarlyUser(context.Background(), models.EarlyUser{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrInsertFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
