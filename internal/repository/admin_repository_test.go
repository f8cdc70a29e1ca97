package repository

import (
	"context"
	"regexp"
	"testing"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var (
	countAdminsSQL = regexp.QuoteMeta(`SELECT count(*) FROM "admins"`)
	insertAdminSQL = regexp.QuoteMeta(`INSERT INTO "admins"`)
)

func TestAdminRepository_Create(t *testing.T) {
	t.Parallel()

	errMail := errors.New("smtp: connection refused")

	type mockBehavior func(m sqlmock.Sqlmock)

	tests := []struct {
		name         string
		afterCreate  func() error
		mockBehavior mockBehavior
		wantErr      error
		wantID       uint
	}{
		{
			name:        "created and mail sent",
			afterCreate: func() error { return nil },
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(countAdminsSQL).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectQuery(insertAdminSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				m.ExpectCommit()
			},
			wantID: 1,
		},
		{
			name:        "mail failure leaves no row",
			afterCreate: func() error { return errMail },
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(countAdminsSQL).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectQuery(insertAdminSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				m.ExpectRollback()
			},
			wantErr: errMail,
		},
		{
			name:        "second admin rejected before insert",
			afterCreate: func() error { return errMail },
			mockBehavior: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(countAdminsSQL).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				m.ExpectRollback()
			},
			wantErr: errs.ErrAdminExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tt.mockBehavior(mock)

			admin := &models.Admin{
				LastName:   "Alaoui",
				FirstName:  "Youssef",
				AgencyName: "Atlas Cars",
				Email:      "admin@atlas.ma",
				Password:   "hash",
				Role:       models.RoleAdmin,
			}
			err := NewAdminRepository(db).Create(context.Background(), admin, tt.afterCreate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantID, admin.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_Verify(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "admins" SET "is_verified"=$1,"updated_at"=$2,"verification_code"=NULL WHERE id = $3 AND verification_code = $4`)).
		WithArgs(true, sqlmock.AnyArg(), 1, "000000").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := NewAdminRepository(db).Verify(context.Background(), 1, "000000")
	require.ErrorIs(t, err, errs.ErrInvalidCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
