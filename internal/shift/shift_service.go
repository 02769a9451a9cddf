package shift

import (
	"context"
	"errors"
	"net/http"

	"go-erp/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrShiftNotFound = apperror.New(
	apperror.CodeNotFound,
	"Shift not found",
	http.StatusNotFound,
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id int8) (ShiftResponse, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{db: db, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ShiftResponse, error) {
	var shifts []Shift
	if err := s.db.WithContext(ctx).Order("shift_id ASC").Find(&shifts).Error; err != nil {
		s.logger.Error("get all shifts failed", zap.Error(err))
		return nil, err
	}

	res := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		res[i] = mapToResponse(sh)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int8) (ShiftResponse, error) {
	var sh Shift
	err := s.db.WithContext(ctx).First(&sh, "shift_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ShiftResponse{}, ErrShiftNotFound
	}
	if err != nil {
		s.logger.Error("get shift by id failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	return mapToResponse(sh), nil
}

func mapToResponse(sh Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:   sh.ShiftID,
		Name:      sh.Name,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
	}
}
