package lifecycle

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-erp/internal/employee"
	"go-erp/internal/events"
	lifecycleerrors "go-erp/internal/lifecycle/errors"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatusCacheKeyPrefix = "employees:status:"
	statusCacheTTL       = 5 * time.Minute
)

func GetStatusCacheKey(businessEntityID int) string {
	return fmt.Sprintf("%s%d", StatusCacheKeyPrefix, businessEntityID)
}

//go:generate mockgen -source=lifecycle_service.go -destination=mock/lifecycle_service_mock.go -package=mock
type Service interface {
	Hire(ctx context.Context, id int, req HireEmployeeRequest) (TransitionResponse, error)
	Terminate(ctx context.Context, id int, req TerminateEmployeeRequest) error
	Rehire(ctx context.Context, id int, req RehireEmployeeRequest) (TransitionResponse, error)
	GetEmploymentStatus(ctx context.Context, id int) (*EmploymentStatusResponse, error)
}

type service struct {
	db     *sql.DB
	repo   employee.Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, outboxRepo, rdb, nil, logger...)
}

// NewServiceWithClock lets tests pin "now"; the rule engine itself never
// reads the wall clock.
func NewServiceWithClock(
	db *sql.DB,
	repo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	nowFn func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("lifecycle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lifecycle.service")
	}
	if nowFn == nil {
		nowFn = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    nowFn,
		logger: l,
	}
}

func (s *service) Hire(ctx context.Context, id int, req HireEmployeeRequest) (TransitionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("hire employee requested",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
		zap.String("hire_date", req.HireDate),
		zap.Int16("department_id", req.DepartmentID),
	)

	hireDate, err := parseBusinessDate("hire_date", req.HireDate)
	if err != nil {
		s.logger.Warn("hire employee invalid hire_date", zap.String("hire_date", req.HireDate))
		return TransitionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("hire employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TransitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("hire employee load failed", zap.Error(err))
		return TransitionResponse{}, err
	}
	if empl == nil {
		return TransitionResponse{}, lifecycleerrors.ErrEmployeeNotFound
	}

	now := s.now()
	if err := ApplyHire(empl, HireDetails{
		HireDate:              hireDate,
		DepartmentID:          req.DepartmentID,
		ShiftID:               req.ShiftID,
		PayRate:               req.PayRate,
		PayFrequency:          req.PayFrequency,
		InitialVacationHours:  req.InitialVacationHours,
		InitialSickLeaveHours: req.InitialSickLeaveHours,
	}, now); err != nil {
		s.logger.Warn("hire employee rejected",
			zap.Int("business_entity_id", id),
			zap.Error(err),
		)
		return TransitionResponse{}, err
	}

	if err := qtx.Replace(ctx, empl); err != nil {
		s.logger.Error("hire employee persist failed", zap.Error(err))
		return TransitionResponse{}, err
	}

	if err := s.queueLifecycleEvent(ctx, tx, empl, events.EmployeeHiredEventType, hireDate, &req.DepartmentID, &req.ShiftID, now); err != nil {
		return TransitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("hire employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return TransitionResponse{}, err
	}

	s.invalidateStatusCache(ctx, id)
	s.logger.Info("hire employee success",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
	)

	return TransitionResponse{BusinessEntityID: empl.BusinessEntityID}, nil
}

func (s *service) Terminate(ctx context.Context, id int, req TerminateEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("terminate employee requested",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
		zap.String("termination_date", req.TerminationDate),
		zap.Bool("payout_pto", req.PayoutPto),
	)

	terminationDate, err := parseBusinessDate("termination_date", req.TerminationDate)
	if err != nil {
		s.logger.Warn("terminate employee invalid termination_date", zap.String("termination_date", req.TerminationDate))
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("terminate employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDWithHistory(ctx, id)
	if err != nil {
		s.logger.Error("terminate employee load failed", zap.Error(err))
		return err
	}
	if empl == nil {
		return lifecycleerrors.ErrEmployeeNotFound
	}

	now := s.now()
	if err := ApplyTerminate(empl, TerminateDetails{
		TerminationDate: terminationDate,
		PayoutPto:       req.PayoutPto,
	}, now); err != nil {
		s.logger.Warn("terminate employee rejected",
			zap.Int("business_entity_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := qtx.Replace(ctx, empl); err != nil {
		s.logger.Error("terminate employee persist failed", zap.Error(err))
		return err
	}

	if err := s.queueLifecycleEvent(ctx, tx, empl, events.EmployeeTerminatedEventType, terminationDate, nil, nil, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("terminate employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidateStatusCache(ctx, id)
	s.logger.Info("terminate employee success",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
	)

	return nil
}

func (s *service) Rehire(ctx context.Context, id int, req RehireEmployeeRequest) (TransitionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("rehire employee requested",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
		zap.String("rehire_date", req.RehireDate),
		zap.Bool("restore_seniority", req.RestoreSeniority),
	)

	rehireDate, err := parseBusinessDate("rehire_date", req.RehireDate)
	if err != nil {
		s.logger.Warn("rehire employee invalid rehire_date", zap.String("rehire_date", req.RehireDate))
		return TransitionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("rehire employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TransitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDWithHistory(ctx, id)
	if err != nil {
		s.logger.Error("rehire employee load failed", zap.Error(err))
		return TransitionResponse{}, err
	}
	if empl == nil {
		return TransitionResponse{}, lifecycleerrors.ErrEmployeeNotFound
	}

	now := s.now()
	if err := ApplyRehire(empl, RehireDetails{
		RehireDate:       rehireDate,
		DepartmentID:     req.DepartmentID,
		ShiftID:          req.ShiftID,
		PayRate:          req.PayRate,
		PayFrequency:     req.PayFrequency,
		RestoreSeniority: req.RestoreSeniority,
	}, now); err != nil {
		s.logger.Warn("rehire employee rejected",
			zap.Int("business_entity_id", id),
			zap.Error(err),
		)
		return TransitionResponse{}, err
	}

	if err := qtx.Replace(ctx, empl); err != nil {
		s.logger.Error("rehire employee persist failed", zap.Error(err))
		return TransitionResponse{}, err
	}

	if err := s.queueLifecycleEvent(ctx, tx, empl, events.EmployeeRehiredEventType, rehireDate, &req.DepartmentID, &req.ShiftID, now); err != nil {
		return TransitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("rehire employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return TransitionResponse{}, err
	}

	s.invalidateStatusCache(ctx, id)
	s.logger.Info("rehire employee success",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", id),
	)

	return TransitionResponse{BusinessEntityID: empl.BusinessEntityID}, nil
}

// GetEmploymentStatus returns nil (no error) for an unknown employee id so
// the caller can distinguish "no such employee" from a failed lookup.
func (s *service) GetEmploymentStatus(ctx context.Context, id int) (*EmploymentStatusResponse, error) {
	cacheKey := GetStatusCacheKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp EmploymentStatusResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empl, err := s.repo.FindByIDWithHistory(ctx, id)
		if err != nil {
			s.logger.Error("employment status load failed", zap.Error(err))
			return nil, err
		}
		if empl == nil {
			return (*EmploymentStatusResponse)(nil), nil
		}

		resp := BuildEmploymentStatus(empl, s.now())

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, statusCacheTTL)
			}
		}

		return &resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*EmploymentStatusResponse), nil
}

func (s *service) queueLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	empl *employee.Employee,
	eventType string,
	effectiveDate time.Time,
	departmentID *int16,
	shiftID *int8,
	now time.Time,
) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:        eventType,
		RequestID:        rid,
		BusinessEntityID: empl.BusinessEntityID,
		EffectiveDate:    effectiveDate.Format("2006-01-02"),
		DepartmentID:     departmentID,
		ShiftID:          shiftID,
		OccurredAt:       now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   fmt.Sprintf("%d", empl.BusinessEntityID),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("lifecycle outbox persist failed",
			zap.Int("business_entity_id", empl.BusinessEntityID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) invalidateStatusCache(ctx context.Context, id int) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetStatusCacheKey(id)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employment status cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func parseBusinessDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperror.New(
			apperror.CodeValidationFailed,
			fmt.Sprintf("invalid %s format, expected YYYY-MM-DD", field),
			http.StatusBadRequest,
		)
	}
	return t, nil
}
