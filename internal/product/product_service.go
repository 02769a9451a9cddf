package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	producterrors "go-erp/internal/product/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=product_service.go -destination=mock/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetAll(ctx context.Context) ([]ProductResponse, error)
	GetByID(ctx context.Context, id int) (ProductResponse, error)
	Update(ctx context.Context, id int, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("product.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	s.logger.Debug("create product requested",
		zap.String("name", req.Name),
		zap.String("product_number", req.ProductNumber),
	)

	if req.ListPrice.LessThan(req.StandardCost) {
		return ProductResponse{}, producterrors.ErrInvalidPricing
	}

	sellStart, err := time.Parse("2006-01-02", req.SellStartDate)
	if err != nil {
		s.logger.Warn("create product invalid sell_start_date",
			zap.String("sell_start_date", req.SellStartDate),
			zap.Error(err),
		)
		return ProductResponse{}, errors.New("invalid sell_start_date format, expected YYYY-MM-DD")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create product begin tx failed", zap.Error(err))
		return ProductResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Product{
		Name:          req.Name,
		ProductNumber: req.ProductNumber,
		Color:         req.Color,
		StandardCost:  req.StandardCost,
		ListPrice:     req.ListPrice,
		SellStartDate: sellStart,
		ModifiedDate:  time.Now().UTC(),
	}
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create product persist failed", zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create product commit failed", zap.Error(err))
		return ProductResponse{}, err
	}

	s.logger.Info("create product success", zap.Int("product_id", p.ProductID))

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all products failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(products), nil
}

func (s *service) GetByID(ctx context.Context, id int) (ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get product by id failed", zap.Error(err))
		return ProductResponse{}, err
	}
	if p == nil {
		return ProductResponse{}, producterrors.ErrProductNotFound
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateProductRequest) (ProductResponse, error) {
	s.logger.Debug("update product requested", zap.Int("product_id", id))

	if req.ListPrice.LessThan(req.StandardCost) {
		return ProductResponse{}, producterrors.ErrInvalidPricing
	}

	var sellEnd *time.Time
	if req.SellEndDate != nil && *req.SellEndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.SellEndDate)
		if err != nil {
			return ProductResponse{}, errors.New("invalid sell_end_date format, expected YYYY-MM-DD")
		}
		sellEnd = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update product begin tx failed", zap.Error(err))
		return ProductResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update product fetch existing failed", zap.Error(err))
		return ProductResponse{}, err
	}
	if p == nil {
		return ProductResponse{}, producterrors.ErrProductNotFound
	}

	p.Name = req.Name
	p.Color = req.Color
	p.StandardCost = req.StandardCost
	p.ListPrice = req.ListPrice
	p.SellEndDate = sellEnd
	p.ModifiedDate = time.Now().UTC()

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update product persist failed", zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update product commit failed", zap.Error(err))
		return ProductResponse{}, err
	}

	s.logger.Info("update product success", zap.Int("product_id", id))

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete product requested", zap.Int("product_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete product begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete product failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete product commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete product success", zap.Int("product_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_product_number" {
			return producterrors.ErrProductNumberAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_product_number") {
		return producterrors.ErrProductNumberAlreadyExists
	}

	return err
}

func mapToResponse(p Product) ProductResponse {
	resp := ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		ProductNumber: p.ProductNumber,
		Color:         p.Color,
		StandardCost:  p.StandardCost,
		ListPrice:     p.ListPrice,
		SellStartDate: p.SellStartDate.Format("2006-01-02"),
	}
	if p.SellEndDate != nil {
		end := p.SellEndDate.Format("2006-01-02")
		resp.SellEndDate = &end
	}
	return resp
}

func mapToListResponse(products []Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = mapToResponse(p)
	}
	return res
}
