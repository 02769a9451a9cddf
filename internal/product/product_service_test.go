package product_test

import (
	"context"
	"database/sql"
	"testing"

	"go-erp/internal/product"
	producterrors "go-erp/internal/product/errors"
	productMock "go-erp/internal/product/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service product.Service
	repo    *productMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := productMock.NewMockRepository(ctrl)

	svc := product.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func createRequest() product.CreateProductRequest {
	return product.CreateProductRequest{
		Name:          "HL Road Frame",
		ProductNumber: "FR-R92B-58",
		Color:         "Black",
		StandardCost:  decimal.RequireFromString("868.6342"),
		ListPrice:     decimal.RequireFromString("1431.50"),
		SellStartDate: "2021-06-01",
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *product.Product) error {
				assert.Equal(t, "FR-R92B-58", p.ProductNumber)
				assert.True(t, p.ListPrice.Equal(decimal.RequireFromString("1431.50")))
				p.ProductID = 680
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, 680, resp.ProductID)
		assert.Equal(t, "2021-06-01", resp.SellStartDate)
	})

	t.Run("list price below standard cost is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		req.ListPrice = decimal.RequireFromString("500.00")

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, producterrors.ErrInvalidPricing)
		// Guard fires before any transaction is opened.
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid sell start date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := createRequest()
		req.SellStartDate = "01/06/2021"

		_, err := deps.service.Create(ctx, req)

		assert.Error(t, err)
	})

	t.Run("duplicate product number -> conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_product_number"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, producterrors.ErrProductNumberAlreadyExists)
	})
}

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, 999).
			Return(nil, nil)

		_, err := deps.service.GetByID(ctx, 999)

		assert.ErrorIs(t, err, producterrors.ErrProductNotFound)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("pricing guard applies on update too", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, 680, product.UpdateProductRequest{
			Name:         "HL Road Frame",
			StandardCost: decimal.RequireFromString("900.00"),
			ListPrice:    decimal.RequireFromString("899.99"),
		})

		assert.ErrorIs(t, err, producterrors.ErrInvalidPricing)
	})
}
