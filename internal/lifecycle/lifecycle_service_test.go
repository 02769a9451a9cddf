package lifecycle_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-erp/internal/employee"
	employeeMock "go-erp/internal/employee/mock"
	"go-erp/internal/events"
	"go-erp/internal/lifecycle"
	lifecycleerrors "go-erp/internal/lifecycle/errors"
	"go-erp/internal/messaging/kafka"
	kafkaMock "go-erp/internal/messaging/kafka/mock"
	"go-erp/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   lifecycle.Service
	repo      *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	now       time.Time
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	now := date("2026-08-29")
	svc := lifecycle.NewServiceWithClock(db, repo, outboxRepo, dbRedis, func() time.Time { return now })

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
		now:       now,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func hireRequest() lifecycle.HireEmployeeRequest {
	return lifecycle.HireEmployeeRequest{
		HireDate:              "2020-01-10",
		DepartmentID:          5,
		ShiftID:               1,
		PayRate:               decimal.RequireFromString("23.50"),
		PayFrequency:          2,
		InitialVacationHours:  int16Ptr(120),
		InitialSickLeaveHours: int16Ptr(60),
	}
}

func TestLifecycleService_Hire(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)
		id := 101

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(newInactiveEmployee(), nil)
		deps.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.True(t, e.CurrentFlag)
				assert.Equal(t, date("2020-01-10"), e.HireDate)
				assert.Len(t, e.DepartmentHistory, 1)
				assert.Len(t, e.PayHistory, 1)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchLifecycleOutbox(rid, events.EmployeeHiredEventType)).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(lifecycle.GetStatusCacheKey(id)).SetVal(1)

		resp, err := deps.service.Hire(ctx, id, hireRequest())

		require.NoError(t, err)
		assert.Equal(t, id, resp.BusinessEntityID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := hireRequest()
		req.HireDate = "10/01/2020"

		_, err := deps.service.Hire(context.Background(), 101, req)

		assert.Error(t, err)
		// No transaction is opened for a malformed date.
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee not found -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(gomock.Any(), 999).
			Return(nil, nil)

		_, err := deps.service.Hire(context.Background(), 999, hireRequest())

		assert.ErrorIs(t, err, lifecycleerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already active -> rollback, nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		active := newInactiveEmployee()
		active.CurrentFlag = true

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(gomock.Any(), 101).
			Return(active, nil)
		// Replace must not be called when the rule engine rejects.
		deps.repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Hire(context.Background(), 101, hireRequest())

		assert.ErrorIs(t, err, lifecycleerrors.ErrAlreadyActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("persist error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByID(gomock.Any(), 101).
			Return(newInactiveEmployee(), nil)
		deps.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		_, err := deps.service.Hire(context.Background(), 101, hireRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLifecycleService_Terminate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 101
		active := terminatedEmployee("2020-01-10", "2019-06-30")
		active.CurrentFlag = true
		active.DepartmentHistory = append(active.DepartmentHistory, employee.DepartmentHistory{
			BusinessEntityID: id,
			DepartmentID:     5,
			ShiftID:          1,
			StartDate:        date("2020-01-10"),
		})

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), id).
			Return(active, nil)
		deps.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.False(t, e.CurrentFlag)
				assert.Equal(t, int16(0), e.VacationHours)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchLifecycleOutbox("", events.EmployeeTerminatedEventType)).
			Return(nil)

		deps.redismock.ExpectDel(lifecycle.GetStatusCacheKey(id)).SetVal(1)

		err := deps.service.Terminate(context.Background(), id, lifecycle.TerminateEmployeeRequest{
			TerminationDate: "2024-10-31",
			PayoutPto:       true,
		})

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already terminated -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), 101).
			Return(terminatedEmployee("2020-01-10", "2024-10-31"), nil)
		deps.repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Terminate(context.Background(), 101, lifecycle.TerminateEmployeeRequest{
			TerminationDate: "2024-11-15",
		})

		assert.ErrorIs(t, err, lifecycleerrors.ErrAlreadyTerminated)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), 999).
			Return(nil, nil)

		err := deps.service.Terminate(context.Background(), 999, lifecycle.TerminateEmployeeRequest{
			TerminationDate: "2024-10-31",
		})

		assert.ErrorIs(t, err, lifecycleerrors.ErrEmployeeNotFound)
	})
}

func TestLifecycleService_Rehire(t *testing.T) {
	rehireReq := func(day string) lifecycle.RehireEmployeeRequest {
		return lifecycle.RehireEmployeeRequest{
			RehireDate:   day,
			DepartmentID: 7,
			ShiftID:      2,
			PayRate:      decimal.RequireFromString("31.25"),
			PayFrequency: 2,
		}
	}

	t.Run("success on cooldown boundary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 101

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), id).
			Return(terminatedEmployee("2020-01-10", "2024-10-31"), nil)
		deps.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.True(t, e.CurrentFlag)
				assert.Equal(t, date("2025-01-29"), e.HireDate)
				assert.Len(t, e.DepartmentHistory, 2)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchLifecycleOutbox("", events.EmployeeRehiredEventType)).
			Return(nil)

		deps.redismock.ExpectDel(lifecycle.GetStatusCacheKey(id)).SetVal(1)

		resp, err := deps.service.Rehire(context.Background(), id, rehireReq("2025-01-29"))

		require.NoError(t, err)
		assert.Equal(t, id, resp.BusinessEntityID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inside cooldown -> rollback, nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), 101).
			Return(terminatedEmployee("2020-01-10", "2024-10-31"), nil)
		deps.repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Rehire(context.Background(), 101, rehireReq("2025-01-12"))

		assert.ErrorIs(t, err, lifecycleerrors.ErrRehireTooSoon)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), 101).
			Return(terminatedEmployee("2020-01-10", "2024-10-31"), nil)
		deps.repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("outbox insert failed"))

		_, err := deps.service.Rehire(context.Background(), 101, rehireReq("2025-01-29"))

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLifecycleService_GetEmploymentStatus(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 201
		cached := lifecycle.EmploymentStatusResponse{
			BusinessEntityID: id,
			EmploymentStatus: lifecycle.EmploymentStatusActive,
		}
		jsonResp, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(lifecycle.GetStatusCacheKey(id)).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindByIDWithHistory(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetEmploymentStatus(context.Background(), id)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, id, resp.BusinessEntityID)
		assert.Equal(t, lifecycle.EmploymentStatusActive, resp.EmploymentStatus)
	})

	t.Run("cache miss loads and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 101
		empl := terminatedEmployee("2020-01-10", "2024-10-31")
		expected := lifecycle.BuildEmploymentStatus(empl, deps.now)
		jsonData, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(lifecycle.GetStatusCacheKey(id)).RedisNil()
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), id).
			Return(empl, nil).
			Times(1)
		deps.redismock.ExpectSet(lifecycle.GetStatusCacheKey(id), jsonData, 5*time.Minute).SetVal("OK")

		resp, err := deps.service.GetEmploymentStatus(context.Background(), id)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, lifecycle.EmploymentStatusTerminated, resp.EmploymentStatus)
		assert.True(t, resp.EligibleForRehire)
	})

	t.Run("unknown employee yields nil, not an error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 999

		deps.redismock.ExpectGet(lifecycle.GetStatusCacheKey(id)).RedisNil()
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), id).
			Return(nil, nil)

		resp, err := deps.service.GetEmploymentStatus(context.Background(), id)

		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := 404

		deps.redismock.ExpectGet(lifecycle.GetStatusCacheKey(id)).RedisNil()
		deps.repo.EXPECT().
			FindByIDWithHistory(gomock.Any(), id).
			Return(nil, errors.New("database connection lost"))

		resp, err := deps.service.GetEmploymentStatus(context.Background(), id)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

// Helper
type lifecycleOutboxMatcher struct {
	expectedRID  string
	expectedType string
}

func (m lifecycleOutboxMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}

	if event.EventType != m.expectedType || event.Topic != events.EmployeeLifecycleTopic {
		return false
	}
	if event.RequestID != m.expectedRID {
		return false
	}

	var payload events.EmployeeLifecycleEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.EventType == m.expectedType && payload.RequestID == m.expectedRID
}

func (m lifecycleOutboxMatcher) String() string {
	return "matches lifecycle outbox event " + m.expectedType + " with request_id " + m.expectedRID
}

func MatchLifecycleOutbox(rid, eventType string) gomock.Matcher {
	return lifecycleOutboxMatcher{expectedRID: rid, expectedType: eventType}
}
