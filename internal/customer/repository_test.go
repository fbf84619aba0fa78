package customer

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

var columns = []string{"id", "name", "street", "number", "zipcode", "city", "active", "reward_points"}

func newCustomerWithAddress(t *testing.T) *Customer {
	t.Helper()
	c, err := New("123", "Customer 1")
	require.NoError(t, err)
	addr, err := NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, err)
	require.NoError(t, c.ChangeAddress(addr))
	return c
}

func TestRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := newCustomerWithAddress(t)

	mock.ExpectExec(regexp.QuoteMeta(insertCustomerSQL)).
		WithArgs("123", "Customer 1", "Street 1", 1, "Zipcode 1", "City 1", false, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewPostgresRepository(mock).Create(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertCustomerSQL)).
		WillReturnError(errors.New("duplicate key"))

	err = NewPostgresRepository(mock).Create(context.Background(), newCustomerWithAddress(t))
	require.ErrorIs(t, err, domain.ErrStorage)
}

func TestRepositoryFind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCustomerSQL)).
		WithArgs("123").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("123", "Customer 1", "Street 1", 1, "Zipcode 1", "City 1", true, 5))

	c, err := NewPostgresRepository(mock).Find(context.Background(), "123")
	require.NoError(t, err)

	want, err := Restore("123", "Customer 1", Address{Street: "Street 1", Number: 1, Zip: "Zipcode 1", City: "City 1"}, true, 5)
	require.NoError(t, err)
	assert.Equal(t, want, c)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFind_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCustomerSQL)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = NewPostgresRepository(mock).Find(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoryFindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCustomersSQL)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("1", "Customer 1", "Street 1", 1, "Zipcode 1", "City 1", true, 0).
			AddRow("2", "Customer 2", "", 0, "", "", false, 0))

	customers, err := NewPostgresRepository(mock).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "1", customers[0].ID())
	assert.True(t, customers[0].IsActive())
	assert.Equal(t, "2", customers[1].ID())
	assert.True(t, customers[1].Address().IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := newCustomerWithAddress(t)
	require.NoError(t, c.Activate())

	mock.ExpectExec(regexp.QuoteMeta(updateCustomerSQL)).
		WithArgs("123", "Customer 1", "Street 1", 1, "Zipcode 1", "City 1", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewPostgresRepository(mock).Update(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(updateCustomerSQL)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewPostgresRepository(mock).Update(context.Background(), newCustomerWithAddress(t))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositoryUpdate_LeavesRewardPoints(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	stale, err := Restore("123", "Customer 1", Address{Street: "Street 1", Number: 1, Zip: "Zipcode 1", City: "City 1"}, true, 50)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(updateCustomerSQL)).
		WithArgs("123", "Customer 1", "Street 1", 1, "Zipcode 1", "City 1", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewPostgresRepository(mock).Update(context.Background(), stale))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.NotContains(t, updateCustomerSQL, "reward_points =")
}
