package lifecycle_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-erp/internal/lifecycle"
	lifecycleerrors "go-erp/internal/lifecycle/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLifecycleService struct {
	HireFn      func(ctx context.Context, id int, req lifecycle.HireEmployeeRequest) (lifecycle.TransitionResponse, error)
	TerminateFn func(ctx context.Context, id int, req lifecycle.TerminateEmployeeRequest) error
	RehireFn    func(ctx context.Context, id int, req lifecycle.RehireEmployeeRequest) (lifecycle.TransitionResponse, error)
	GetStatusFn func(ctx context.Context, id int) (*lifecycle.EmploymentStatusResponse, error)
}

func (f *fakeLifecycleService) Hire(ctx context.Context, id int, req lifecycle.HireEmployeeRequest) (lifecycle.TransitionResponse, error) {
	return f.HireFn(ctx, id, req)
}
func (f *fakeLifecycleService) Terminate(ctx context.Context, id int, req lifecycle.TerminateEmployeeRequest) error {
	return f.TerminateFn(ctx, id, req)
}
func (f *fakeLifecycleService) Rehire(ctx context.Context, id int, req lifecycle.RehireEmployeeRequest) (lifecycle.TransitionResponse, error) {
	return f.RehireFn(ctx, id, req)
}
func (f *fakeLifecycleService) GetEmploymentStatus(ctx context.Context, id int) (*lifecycle.EmploymentStatusResponse, error) {
	return f.GetStatusFn(ctx, id)
}

func postJSON(c *gin.Context, path, body string) {
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestLifecycleHandler_Hire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLifecycleService{
			HireFn: func(ctx context.Context, id int, req lifecycle.HireEmployeeRequest) (lifecycle.TransitionResponse, error) {
				assert.Equal(t, 101, id)
				assert.Equal(t, "2020-01-10", req.HireDate)
				return lifecycle.TransitionResponse{BusinessEntityID: id}, nil
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/hire", `{"hire_date":"2020-01-10","department_id":5,"shift_id":1,"pay_rate":"23.50","pay_frequency":2}`)

		h.Hire(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"business_entity_id":101`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := lifecycle.NewHandler(&fakeLifecycleService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/hire", `{}`)

		h.Hire(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h := lifecycle.NewHandler(&fakeLifecycleService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		postJSON(c, "/employees/abc/hire", `{}`)

		h.Hire(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already active -> conflict", func(t *testing.T) {
		svc := &fakeLifecycleService{
			HireFn: func(ctx context.Context, id int, req lifecycle.HireEmployeeRequest) (lifecycle.TransitionResponse, error) {
				return lifecycle.TransitionResponse{}, lifecycleerrors.ErrAlreadyActive
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/hire", `{"hire_date":"2020-01-10","department_id":5,"shift_id":1,"pay_rate":"23.50","pay_frequency":2}`)

		h.Hire(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLifecycleHandler_Terminate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLifecycleService{
			TerminateFn: func(ctx context.Context, id int, req lifecycle.TerminateEmployeeRequest) error {
				assert.Equal(t, 101, id)
				assert.True(t, req.PayoutPto)
				return nil
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/terminate", `{"termination_date":"2024-10-31","payout_pto":true}`)

		h.Terminate(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already terminated -> conflict", func(t *testing.T) {
		svc := &fakeLifecycleService{
			TerminateFn: func(ctx context.Context, id int, req lifecycle.TerminateEmployeeRequest) error {
				return lifecycleerrors.ErrAlreadyTerminated
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/terminate", `{"termination_date":"2024-11-15"}`)

		h.Terminate(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLifecycleHandler_Rehire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLifecycleService{
			RehireFn: func(ctx context.Context, id int, req lifecycle.RehireEmployeeRequest) (lifecycle.TransitionResponse, error) {
				assert.True(t, req.RestoreSeniority)
				return lifecycle.TransitionResponse{BusinessEntityID: id}, nil
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/rehire", `{"rehire_date":"2025-01-29","department_id":7,"shift_id":2,"pay_rate":"31.25","pay_frequency":2,"restore_seniority":true}`)

		h.Rehire(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("too soon -> conflict with earliest date", func(t *testing.T) {
		svc := &fakeLifecycleService{
			RehireFn: func(ctx context.Context, id int, req lifecycle.RehireEmployeeRequest) (lifecycle.TransitionResponse, error) {
				return lifecycle.TransitionResponse{}, lifecycleerrors.RehireTooSoon(date("2025-01-29"))
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}

		postJSON(c, "/employees/101/rehire", `{"rehire_date":"2025-01-12","department_id":7,"shift_id":2,"pay_rate":"31.25","pay_frequency":2}`)

		h.Rehire(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "2025-01-29")
	})
}

func TestLifecycleHandler_GetEmploymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		days := 10
		svc := &fakeLifecycleService{
			GetStatusFn: func(ctx context.Context, id int) (*lifecycle.EmploymentStatusResponse, error) {
				return &lifecycle.EmploymentStatusResponse{
					BusinessEntityID: id,
					EmploymentStatus: lifecycle.EmploymentStatusActive,
					DaysEmployed:     &days,
				}, nil
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "101"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/101/employment-status", nil)

		h.GetEmploymentStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employment_status":"Active"`)
		assert.Contains(t, w.Body.String(), `"days_employed":10`)
	})

	t.Run("unknown employee -> not found", func(t *testing.T) {
		svc := &fakeLifecycleService{
			GetStatusFn: func(ctx context.Context, id int) (*lifecycle.EmploymentStatusResponse, error) {
				return nil, nil
			},
		}

		h := lifecycle.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "999"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/999/employment-status", nil)

		h.GetEmploymentStatus(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
