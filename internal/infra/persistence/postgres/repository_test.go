package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCartRepository_AddItem_ReturnsMergedQuantity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	cartID := uuid.New()

	mock.ExpectQuery(`INSERT INTO cart_items .* ON CONFLICT \(cart_id, product_id\) DO UPDATE`).
		WithArgs(cartID, int64(7), 2).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))

	total, err := repo.AddItem(context.Background(), cartID, 7, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddItem_MissingCart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`INSERT INTO cart_items`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "cart_items_cart_id_fkey"})

	_, err := repo.AddItem(context.Background(), uuid.New(), 7, 1)

	assert.ErrorIs(t, err, repository.ErrCartNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_AddItem_OutOfRangeIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "integer overflow", err: &pgconn.PgError{Code: pgNumericOutOfRange}},
		{name: "merged total over limit", err: &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "cart_items_quantity_check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCartRepository(db)

			mock.ExpectQuery(`INSERT INTO cart_items`).WillReturnError(tt.err)

			_, err := repo.AddItem(context.Background(), uuid.New(), 7, 9000)

			assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCartRepository_Create_SecondCartConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`INSERT INTO "carts"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "carts_user_id_key"})

	err := repo.Create(context.Background(), &entity.Cart{UserID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrCartAlreadyExists)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
}

func TestCartRepository_LockByID_UsesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	cartID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).AddRow(cartID, userID, time.Now()))

	cart, err := repo.LockByID(context.Background(), cartID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_FindByUserID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}))

	_, err := repo.FindByUserID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartRepository_UpdateItemQuantity_MissingLine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`UPDATE "cart_items" SET "quantity"=\$1 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItemQuantity(context.Background(), uuid.New(), 3, 4)

	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_RemoveItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectExec(`DELETE FROM "cart_items" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RemoveItem(context.Background(), uuid.New(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &entity.User{Username: "ann", Email: "ann@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateByEmail_CoalescesOmittedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	address := "1 Main St"
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "address", "google_id", "created_at", "updated_at"}).
		AddRow(id, "ann", "ann@example.com", "stored-hash", address, nil, now, now)
	mock.ExpectQuery(`UPDATE "users" SET .*COALESCE\(\$\d+, password_hash\).* WHERE email = \$\d+ RETURNING \*`).
		WillReturnRows(rows)

	user, err := repo.UpdateByEmail(context.Background(), "ann@example.com", entity.UserChanges{Address: &address})

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "stored-hash", user.PasswordHash)
	assert.Equal(t, address, user.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateByEmail_UnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`UPDATE "users" SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateByEmail(context.Background(), "nobody@example.com", entity.UserChanges{})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM "users" WHERE email = \$1`).
		WithArgs("gone@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByEmail(context.Background(), "gone@example.com")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestOrderRepository_Create_ForeignKeyMapping(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "unknown user", constraint: "orders_user_id_fkey", want: domainerrors.ErrUserNotFound},
		{name: "unknown payment method", constraint: "orders_payment_method_id_fkey", want: domainerrors.ErrPaymentMethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewOrderRepository(db)

			mock.ExpectExec(`INSERT INTO "orders"`).
				WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &entity.Order{
				UserID:          uuid.New(),
				PaymentMethodID: uuid.New(),
				TotalAmount:     decimal.RequireFromString("10.00"),
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOrderRepository_CreateItems_BatchInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	orderID := uuid.New()
	items := []*entity.OrderItem{
		entity.NewOrderItem(1, 2, decimal.RequireFromString("3.50")),
		entity.NewOrderItem(2, 1, decimal.RequireFromString("1.00")),
	}

	mock.ExpectExec(`INSERT INTO "order_items" .* VALUES \(.*\),\(.*\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.CreateItems(context.Background(), orderID, items))
	for _, item := range items {
		assert.Equal(t, orderID, item.OrderID)
		assert.NotEqual(t, uuid.Nil, item.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateItems_OutOfRangeIsValidation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	items := []*entity.OrderItem{entity.NewOrderItem(1, 10000, decimal.RequireFromString("9999999.99"))}

	mock.ExpectExec(`INSERT INTO "order_items"`).
		WillReturnError(&pgconn.PgError{Code: pgNumericOutOfRange})

	err := repo.CreateItems(context.Background(), uuid.New(), items)

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	now := time.Now()

	mock.ExpectExec(`DELETE FROM "sessions" WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionRepository_FindActiveByID_Expired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id = \$1 AND expires_at > \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindActiveByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	failure := errors.New("checkout failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	cartID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(cartID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.CartRepo().ClearItems(context.Background(), cartID)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaStatements_SplitsFile(t *testing.T) {
	statements := schemaStatements()

	require.NotEmpty(t, statements)
	assert.Contains(t, statements[0], "pgcrypto")
	for _, stmt := range statements {
		assert.NotEmpty(t, stmt)
	}
}
