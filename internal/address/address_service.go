package address

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	addresserrors "go-erp/internal/address/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=address_service.go -destination=mock/address_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAddressRequest) (AddressResponse, error)
	GetAll(ctx context.Context) ([]AddressResponse, error)
	GetByID(ctx context.Context, id int) (AddressResponse, error)
	Update(ctx context.Context, id int, req UpdateAddressRequest) (AddressResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("address.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAddressRequest) (AddressResponse, error) {
	s.logger.Debug("create address requested", zap.String("city", req.City))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create address begin tx failed", zap.Error(err))
		return AddressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	addr := &Address{
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		StateProvince: req.StateProvince,
		PostalCode:    req.PostalCode,
		ModifiedDate:  time.Now().UTC(),
	}
	if err := qtx.Create(ctx, addr); err != nil {
		s.logger.Error("create address persist failed", zap.Error(err))
		return AddressResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create address commit failed", zap.Error(err))
		return AddressResponse{}, err
	}

	s.logger.Info("create address success", zap.Int("address_id", addr.AddressID))

	return mapToResponse(*addr), nil
}

func (s *service) GetAll(ctx context.Context) ([]AddressResponse, error) {
	addrs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all addresses failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(addrs), nil
}

func (s *service) GetByID(ctx context.Context, id int) (AddressResponse, error) {
	addr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get address by id failed", zap.Error(err))
		return AddressResponse{}, err
	}
	if addr == nil {
		return AddressResponse{}, addresserrors.ErrAddressNotFound
	}
	return mapToResponse(*addr), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateAddressRequest) (AddressResponse, error) {
	s.logger.Debug("update address requested", zap.Int("address_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update address begin tx failed", zap.Error(err))
		return AddressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	addr, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update address fetch existing failed", zap.Error(err))
		return AddressResponse{}, err
	}
	if addr == nil {
		return AddressResponse{}, addresserrors.ErrAddressNotFound
	}

	addr.AddressLine1 = req.AddressLine1
	addr.AddressLine2 = req.AddressLine2
	addr.City = req.City
	addr.StateProvince = req.StateProvince
	addr.PostalCode = req.PostalCode
	addr.ModifiedDate = time.Now().UTC()

	if err := qtx.Update(ctx, addr); err != nil {
		s.logger.Error("update address persist failed", zap.Error(err))
		return AddressResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update address commit failed", zap.Error(err))
		return AddressResponse{}, err
	}

	s.logger.Info("update address success", zap.Int("address_id", id))

	return mapToResponse(*addr), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete address requested", zap.Int("address_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete address begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete address failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete address commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete address success", zap.Int("address_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_address_lines" {
			return addresserrors.ErrAddressAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_address_lines") {
		return addresserrors.ErrAddressAlreadyExists
	}

	return err
}

func mapToResponse(addr Address) AddressResponse {
	return AddressResponse{
		AddressID:     addr.AddressID,
		AddressLine1:  addr.AddressLine1,
		AddressLine2:  addr.AddressLine2,
		City:          addr.City,
		StateProvince: addr.StateProvince,
		PostalCode:    addr.PostalCode,
	}
}

func mapToListResponse(addrs []Address) []AddressResponse {
	res := make([]AddressResponse, len(addrs))
	for i, addr := range addrs {
		res[i] = mapToResponse(addr)
	}
	return res
}
