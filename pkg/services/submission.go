package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/metrics"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/models"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/store"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/utils"
)

// ErrInsertFailed wraps any failure reported by the external store
var ErrInsertFailed = errors.New("database insert failed")

// Submission kinds, used as metric labels
const (
	KindLead      = "lead"
	KindEarlyUser = "early_user"
)

// SubmissionService defines the interface for persisting form submissions
type SubmissionService interface {
	SubmitLead(ctx context.Context, lead models.Lead) error
	SubmitEarlyUser(ctx context.Context, user models.EarlyUser) error
}

// Tables names the collections each submission kind is inserted into
type Tables struct {
	Leads      string
	EarlyUsers string
}

type submissionServiceImpl struct {
	inserter store.Inserter
	tables   Tables
	timeout  time.Duration
	metrics  metrics.SubmissionMetrics
	log      *zap.Logger
}

// NewSubmissionService creates a new submission service. A zero timeout
// leaves inserts bounded only by the caller's context.
func NewSubmissionService(
	inserter store.Inserter,
	tables Tables,
	timeout time.Duration,
	m metrics.SubmissionMetrics,
	log *zap.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		inserter: inserter,
		tables:   tables,
		timeout:  timeout,
		metrics:  m,
		log:      log,
	}
}

// SubmitLead inserts a business lead. There is no deduplication: every
// call makes exactly one insert attempt.
func (s *submissionServiceImpl) SubmitLead(ctx context.Context, lead models.Lead) error {
	return s.insert(ctx, KindLead, s.tables.Leads, lead.Email, lead.Record())
}

// SubmitEarlyUser inserts an early access request
func (s *submissionServiceImpl) SubmitEarlyUser(ctx context.Context, user models.EarlyUser) error {
	return s.insert(ctx, KindEarlyUser, s.tables.EarlyUsers, user.Email, user.Record())
}

func (s *submissionServiceImpl) insert(ctx context.Context, kind, table, email string, record map[string]any) error {
	log := s.log.With(
		zap.String("kind", kind),
		zap.String("table", table),
		zap.String("email_hash", utils.EmailFingerprint(email)),
	)
	log.Info("Processing submission")

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.inserter.Insert(ctx, table, record)
	s.metrics.ObserveInsert(kind, time.Since(start))

	if err != nil {
		s.metrics.IncSubmission(kind, metrics.OutcomeFailed)
		log.Error("Store insert failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInsertFailed, err)
	}

	s.metrics.IncSubmission(kind, metrics.OutcomeAccepted)
	log.Info("Submission stored")
	return nil
}
