package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// newReplicatedMockDB returns a gorm DB whose reads default to a replica, the
// way go-lib wires replicas in production.
func newReplicatedMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, sqlmock.Sqlmock) {
	t.Helper()

	db, primary := newMockDB(t)

	replicaSQL, replica, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = replicaSQL.Close() })

	require.NoError(t, db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.New(postgres.Config{Conn: replicaSQL})},
	})))

	return db, primary, replica
}

func TestReplicaRouting_ItemListsReadPrimary(t *testing.T) {
	db, primary, replica := newReplicatedMockDB(t)
	ctx := context.Background()
	cartID := uuid.New()
	orderID := uuid.New()

	primary.ExpectQuery(`SELECT \* FROM "cart_items" WHERE cart_id = \$1`).
		WithArgs(cartID).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id", "product_id", "quantity"}).AddRow(cartID, 3, 2))
	primary.ExpectQuery(`SELECT \* FROM "order_items" WHERE order_id = \$1`).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "unit_price", "subtotal"}).
			AddRow(orderID, 3, 2, "4.50", "9.00"))

	cartItems, err := NewCartRepository(db).ListItems(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, cartItems, 1)
	assert.Equal(t, 2, cartItems[0].Quantity)

	orderItems, err := NewOrderRepository(db).ListItems(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, orderItems, 1)

	assert.NoError(t, primary.ExpectationsWereMet())
	assert.NoError(t, replica.ExpectationsWereMet())
}

func TestReplicaRouting_ProductListingUsesReplica(t *testing.T) {
	db, primary, replica := newReplicatedMockDB(t)

	replica.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	_, err := NewProductRepository(db).List(context.Background(), 10)
	require.NoError(t, err)

	assert.NoError(t, primary.ExpectationsWereMet())
	assert.NoError(t, replica.ExpectationsWereMet())
}
