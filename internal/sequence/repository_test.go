package sequence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestNextSequence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(nextSequenceSQL)).
		WithArgs("customer-1").
		WillReturnRows(pgxmock.NewRows([]string{"last_sequence"}).AddRow(int64(3)))

	seq, err := NewRepository(mock).NextSequence(context.Background(), "customer-1")
	require.NoError(t, err)
	require.Equal(t, int64(3), seq)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNextSequence_Errors(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	_, err = repo.NextSequence(context.Background(), "")
	require.Error(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(nextSequenceSQL)).
		WithArgs("customer-1").
		WillReturnError(errors.New("db down"))

	_, err = repo.NextSequence(context.Background(), "customer-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
