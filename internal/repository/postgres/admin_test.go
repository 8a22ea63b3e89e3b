package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/database"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

func setupAdminRepo(t *testing.T) (*AdminRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewAdminRepository(mock)
	return repo, mock
}

func sampleAdmin() *domain.Admin {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Admin{
		ID:           "admin-001",
		Email:        "admin@supermall.example",
		Name:         "Mall Admin",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func adminColumns() []string {
	return []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}
}

func TestAdminRepository_Create_Success(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	a := sampleAdmin()

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(a.ID, a.Email, a.Name, a.PasswordHash, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	a := sampleAdmin()

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(a.ID, a.Email, a.Name, a.PasswordHash, a.CreatedAt, a.UpdatedAt).
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	err := repo.Create(context.Background(), a)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_GetByEmail_Success(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	a := sampleAdmin()

	mock.ExpectQuery("SELECT .+ FROM admins WHERE email").
		WithArgs(a.Email).
		WillReturnRows(pgxmock.NewRows(adminColumns()).
			AddRow(a.ID, a.Email, a.Name, a.PasswordHash, a.CreatedAt, a.UpdatedAt))

	result, err := repo.GetByEmail(context.Background(), a.Email)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, a.PasswordHash, result.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM admins WHERE email").
		WithArgs("unknown@supermall.example").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByEmail(context.Background(), "unknown@supermall.example")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_UpdatePassword_Success(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE admins").
		WithArgs("$2a$10$newhash", pgxmock.AnyArg(), "admin-001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePassword(context.Background(), "admin-001", "$2a$10$newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_UpdatePassword_NotFound(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE admins").
		WithArgs("$2a$10$newhash", pgxmock.AnyArg(), "nonexistent-id").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdatePassword(context.Background(), "nonexistent-id", "$2a$10$newhash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepository_Count(t *testing.T) {
	repo, mock := setupAdminRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
