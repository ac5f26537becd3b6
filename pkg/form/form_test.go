package form

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (r *recordingSubmitter) Submit(ctx context.Context, path string, payload any) error {
	r.calls.Add(1)
	if r.release != nil {
		<-r.release
	}
	return r.err
}

func validLead() LeadForm {
	return LeadForm{
		BusinessName:    "Joe's Plumbing",
		Email:           "joe@example.com",
		ServiceCategory: "Home Services",
	}
}

func TestEarlyAccess_InvalidEmailSendsNothing(t *testing.T) {
	sub := &recordingSubmitter{}
	f := NewEarlyAccessForm(sub)

	err := f.Submit(context.Background(), EarlyAccessForm{Email: "not-an-email"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Please enter a valid email", verr.Fields["email"])
	assert.Equal(t, int32(0), sub.calls.Load())
	assert.Equal(t, Idle, f.State())
}

func TestEarlyAccess_NamesOptional(t *testing.T) {
	sub := &recordingSubmitter{}
	f := NewEarlyAccessForm(sub)

	require.NoError(t, f.Submit(context.Background(), EarlyAccessForm{Email: "ada@example.com"}))
	assert.Equal(t, Submitted, f.State())
	assert.Equal(t, int32(1), sub.calls.Load())
}

func TestLeadForm_Validation(t *testing.T) {
	lead := validLead()
	lead.BusinessName = "J"
	lead.ServiceCategory = ""
	lead.Email = ""

	err := Validate(lead)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"business_name":    "Business name is required",
		"email":            "Please enter a valid email",
		"service_category": "Please select a category",
	}, verr.Fields)
	assert.Contains(t, verr.Error(), "business_name: Business name is required")

	assert.NoError(t, Validate(validLead()))
}

func TestForm_FailureReturnsToIdle(t *testing.T) {
	sub := &recordingSubmitter{err: &StatusError{StatusCode: http.StatusInternalServerError}}
	f := NewLeadForm(sub)

	err := f.Submit(context.Background(), validLead())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, Idle, f.State())

	// the form stays editable and can be sent again
	sub.err = nil
	require.NoError(t, f.Submit(context.Background(), validLead()))
	assert.Equal(t, Submitted, f.State())
}

func TestForm_SubmittedUntilReset(t *testing.T) {
	sub := &recordingSubmitter{}
	f := NewLeadForm(sub)

	require.NoError(t, f.Submit(context.Background(), validLead()))
	assert.ErrorIs(t, f.Submit(context.Background(), validLead()), ErrAlreadySubmitted)
	assert.Equal(t, int32(1), sub.calls.Load())

	f.Reset()
	assert.Equal(t, Idle, f.State())
	require.NoError(t, f.Submit(context.Background(), validLead()))
	assert.Equal(t, int32(2), sub.calls.Load())
}

func TestForm_BusyWhileSubmitting(t *testing.T) {
	sub := &recordingSubmitter{release: make(chan struct{})}
	f := NewLeadForm(sub)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background(), validLead()) }()

	require.Eventually(t, func() bool { return f.State() == Submitting }, time.Second, time.Millisecond)
	assert.ErrorIs(t, f.Submit(context.Background(), validLead()), ErrBusy)

	// Reset is ignored mid-flight
	f.Reset()
	assert.Equal(t, Submitting, f.State())

	close(sub.release)
	require.NoError(t, <-done)
	assert.Equal(t, Submitted, f.State())
	assert.Equal(t, int32(1), sub.calls.Load())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "submitted", Submitted.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestHTTPSubmitter(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		if gotBody["email"] == "fail@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	f := NewEarlyAccessForm(NewHTTPSubmitter(server.URL + "/"))
	require.NoError(t, f.Submit(context.Background(), EarlyAccessForm{FirstName: "Ada", Email: "ada@example.com"}))

	assert.Equal(t, EarlyUserPath, gotPath)
	assert.Equal(t, map[string]any{"first_name": "Ada", "email": "ada@example.com"}, gotBody)

	f.Reset()
	err := f.Submit(context.Background(), EarlyAccessForm{Email: "fail@example.com"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, Idle, f.State())
}

func TestDemoSubmitter(t *testing.T) {
	start := time.Now()
	require.NoError(t, DemoSubmitter{Delay: 20 * time.Millisecond}.Submit(context.Background(), LeadPath, validLead()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := DemoSubmitter{Delay: time.Hour}.Submit(ctx, LeadPath, validLead())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitterFunc(t *testing.T) {
	var got string
	f := NewEarlyAccessForm(SubmitterFunc(func(ctx context.Context, path string, payload any) error {
		got = path
		return nil
	}))

	require.NoError(t, f.Submit(context.Background(), EarlyAccessForm{Email: "ada@example.com"}))
	assert.Equal(t, EarlyUserPath, got)
}
