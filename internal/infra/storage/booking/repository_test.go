package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db)), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	created := start.Add(-48 * time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(bookingRows().AddRow(
			42, 1, 2, 3, start, start.Add(30*time.Minute), "confirmed", 1500.0, nil, nil, created, created,
		))

	booking, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, start, booking.Window.Start)
	assert.Equal(t, 30*time.Minute, booking.Window.Duration())
	assert.Nil(t, booking.CancellationReason)
	assert.Equal(t, created, booking.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByBusinessWithFilter_ExcludesCancelledByDefault(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(10 * time.Hour)

	mock.ExpectQuery(`FROM bookings WHERE business_id = \$1 AND end_at > \$2 AND start_at < \$3 AND status NOT IN (.+) ORDER BY start_at ASC, id ASC`).
		WithArgs(int64(1), from, to, "cancelled_by_customer", "cancelled_by_business").
		WillReturnRows(bookingRows().
			AddRow(1, 1, 2, 3, start, start.Add(time.Hour), "pending", 0.0, nil, nil, from, from).
			AddRow(2, 1, 2, 4, start.Add(time.Hour), start.Add(2*time.Hour), "no_show", 0.0, nil, nil, from, from))

	bookings, err := repo.GetByBusinessWithFilter(context.Background(), domain.BookingsFilter{
		BusinessID: 1,
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.StatusNoShow, bookings[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBusinessWithFilter_Statuses(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM bookings WHERE business_id = \$1 AND status IN (.+) ORDER BY`).
		WithArgs(int64(5), "confirmed").
		WillReturnRows(bookingRows())

	bookings, err := repo.GetByBusinessWithFilter(context.Background(), domain.BookingsFilter{
		BusinessID: 5,
		Statuses:   []domain.BookingStatus{domain.StatusConfirmed},
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBusinessWithFilter_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM bookings`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByBusinessWithFilter(context.Background(), domain.BookingsFilter{BusinessID: 1})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancellation_reason = \$2, cancelled_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$3 AND status IN`).
		WithArgs("cancelled_by_customer", "plans changed", int64(42), "pending", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 42, domain.StatusCancelledByCustomer, ptr.Ptr("plans changed"))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_WithoutReasonKeepsNull(t *testing.T) {
	repo, mock := newMockRepo(t)

	// cancellation_reason не попадает в SET, колонка остаётся NULL
	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancelled_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$2 AND status IN`).
		WithArgs("cancelled_by_business", int64(42), "pending", "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 42, domain.StatusCancelledByBusiness, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_AlreadyTerminal(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 42, domain.StatusCancelledByBusiness, nil)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestRepository_Cancel_RejectsNonCancelStatus(t *testing.T) {
	repo, _ := newMockRepo(t)

	err := repo.Cancel(context.Background(), 42, domain.StatusCompleted, nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRepository_CompleteElapsed(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE status IN \(\$2\) AND end_at <= \$3 RETURNING id`).
		WithArgs("completed", "confirmed", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))

	ids, err := repo.CompleteElapsed(context.Background(), []domain.BookingStatus{domain.StatusConfirmed}, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CompleteElapsed_NothingToDo(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE bookings`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.CompleteElapsed(context.Background(), []domain.BookingStatus{domain.StatusConfirmed}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepository_CompleteElapsed_NoStatuses(t *testing.T) {
	repo, mock := newMockRepo(t)

	ids, err := repo.CompleteElapsed(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE bookings`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), &sql.TxOptions{})
	require.NoError(t, err)

	ids, err := repo.CompleteElapsed(dbmetrics.WithTx(context.Background(), tx), []domain.BookingStatus{domain.StatusConfirmed}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
		WithArgs("no_show", int64(42), "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusConfirmed, domain.StatusNoShow)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_Changed(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStatusChanged)
}
