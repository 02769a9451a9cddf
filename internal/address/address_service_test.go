package address_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-erp/internal/address"
	addresserrors "go-erp/internal/address/errors"
	addressMock "go-erp/internal/address/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service address.Service
	repo    *addressMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := addressMock.NewMockRepository(ctrl)

	svc := address.NewService(db, repo)

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func createRequest() address.CreateAddressRequest {
	return address.CreateAddressRequest{
		AddressLine1:  "1970 Napa Ct.",
		City:          "Bothell",
		StateProvince: "Washington",
		PostalCode:    "98011",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, addr *address.Address) error {
				assert.Equal(t, "1970 Napa Ct.", addr.AddressLine1)
				assert.Equal(t, "Bothell", addr.City)
				assert.False(t, addr.ModifiedDate.IsZero())
				addr.AddressID = 1
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.AddressID)
		assert.Equal(t, "98011", resp.PostalCode)
	})

	t.Run("duplicate address maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_address_lines"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, addresserrors.ErrAddressAlreadyExists)
	})

	t.Run("persist error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		repoErr := errors.New("connection reset")

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(repoErr)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, repoErr)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAddressService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindByID(ctx, 1).
			Return(&address.Address{
				AddressID:     1,
				AddressLine1:  "1970 Napa Ct.",
				City:          "Bothell",
				StateProvince: "Washington",
				PostalCode:    "98011",
			}, nil)

		resp, err := deps.service.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Bothell", resp.City)
	})

	t.Run("unknown id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByID(ctx, 999).Return(nil, nil)

		_, err := deps.service.GetByID(ctx, 999)

		assert.ErrorIs(t, err, addresserrors.ErrAddressNotFound)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &address.Address{
			AddressID:     1,
			AddressLine1:  "1970 Napa Ct.",
			City:          "Bothell",
			StateProvince: "Washington",
			PostalCode:    "98011",
		}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 1).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, addr *address.Address) error {
				assert.Equal(t, "Seattle", addr.City)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		req := address.UpdateAddressRequest{
			AddressLine1:  "1970 Napa Ct.",
			City:          "Seattle",
			StateProvince: "Washington",
			PostalCode:    "98101",
		}
		resp, err := deps.service.Update(ctx, 1, req)

		assert.NoError(t, err)
		assert.Equal(t, "Seattle", resp.City)
		assert.Equal(t, "98101", resp.PostalCode)
	})

	t.Run("unknown id leaves nothing written", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 999).Return(nil, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, 999, address.UpdateAddressRequest{
			AddressLine1:  "x",
			City:          "x",
			StateProvince: "x",
			PostalCode:    "x",
		})

		assert.ErrorIs(t, err, addresserrors.ErrAddressNotFound)
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Delete(ctx, 1).Return(nil)
	deps.sqlMock.ExpectCommit()

	err := deps.service.Delete(ctx, 1)

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAddressService_GetAll(t *testing.T) {
	ctx := context.Background()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().
		FindAll(ctx).
		Return([]address.Address{
			{AddressID: 1, AddressLine1: "1970 Napa Ct.", City: "Bothell"},
			{AddressID: 2, AddressLine1: "9833 Mt. Dias Blv.", City: "Bothell"},
		}, nil)

	resp, err := deps.service.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "9833 Mt. Dias Blv.", resp[1].AddressLine1)
}
