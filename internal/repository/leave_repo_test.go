package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/apperr"
	"github.com/mohanyaswanthkumar/hws-pfsd/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestTransitionStatus_UpdatesPendingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `leaves` SET").
		WithArgs(uint(99), "approved", uint(1), models.LeaveStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.TransitionStatus(1, "approved", 99)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_AlreadyReviewedMatchesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepo(db)

	// The row left pending before this update ran, so the guard matches zero
	// rows and the caller can report a conflict.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `leaves` SET").
		WithArgs(uint(99), "rejected", uint(1), models.LeaveStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.TransitionStatus(1, "rejected", 99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeaveByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM `leaves`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetLeaveByID(404)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteLeave_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `leaves`").
		WithArgs(uint(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteLeave(404)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
