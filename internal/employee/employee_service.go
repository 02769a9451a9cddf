package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	employeeerrors "go-erp/internal/employee/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/counter"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("login_id", req.LoginID),
		zap.String("job_title", req.JobTitle),
	)

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		s.logger.Warn("create employee invalid birth_date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, errors.New("invalid birth_date format, expected YYYY-MM-DD")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextID, err := s.counter.GetNextValue(ctx, "business_entity_id")
	if err != nil {
		s.logger.Error("create employee generate id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if req.NationalIDNumber == "" {
		nextNID, err := s.counter.GetNextValue(ctx, "national_id_number")
		if err != nil {
			s.logger.Error("create employee generate national id failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.NationalIDNumber = fmt.Sprintf("NID-%09d", nextNID)
	}

	now := time.Now().UTC()
	empl := &Employee{
		BusinessEntityID: int(nextID),
		NationalIDNumber: req.NationalIDNumber,
		LoginID:          req.LoginID,
		JobTitle:         req.JobTitle,
		BirthDate:        birthDate,
		MaritalStatus:    req.MaritalStatus,
		Gender:           req.Gender,
		SalariedFlag:     req.SalariedFlag,
		// New records start inactive: activation is a lifecycle hire,
		// not a side effect of record creation.
		CurrentFlag:  false,
		ModifiedDate: now,
		Person: &Person{
			BusinessEntityID: int(nextID),
			FirstName:        req.FirstName,
			MiddleName:       req.MiddleName,
			LastName:         req.LastName,
			ModifiedDate:     now,
		},
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("business_entity_id", empl.BusinessEntityID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int("business_entity_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.Int("business_entity_id", id),
		zap.String("job_title", req.JobTitle),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	now := time.Now().UTC()
	empl.JobTitle = req.JobTitle
	empl.MaritalStatus = req.MaritalStatus
	empl.Gender = req.Gender
	empl.SalariedFlag = req.SalariedFlag
	empl.ModifiedDate = now
	if empl.Person != nil {
		empl.Person.FirstName = req.FirstName
		empl.Person.MiddleName = req.MiddleName
		empl.Person.LastName = req.LastName
		empl.Person.ModifiedDate = now
	}

	if err := qtx.Replace(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.Int("business_entity_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete employee requested", zap.Int("business_entity_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.Int("business_entity_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		BusinessEntityID: empl.BusinessEntityID,
		NationalIDNumber: empl.NationalIDNumber,
		LoginID:          empl.LoginID,
		JobTitle:         empl.JobTitle,
		BirthDate:        empl.BirthDate.Format("2006-01-02"),
		MaritalStatus:    empl.MaritalStatus,
		Gender:           empl.Gender,
		SalariedFlag:     empl.SalariedFlag,
		VacationHours:    empl.VacationHours,
		SickLeaveHours:   empl.SickLeaveHours,
		CurrentFlag:      empl.CurrentFlag,
	}
	if !empl.HireDate.IsZero() {
		resp.HireDate = empl.HireDate.Format("2006-01-02")
	}
	if empl.Person != nil {
		resp.FirstName = empl.Person.FirstName
		resp.MiddleName = empl.Person.MiddleName
		resp.LastName = empl.Person.LastName
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
