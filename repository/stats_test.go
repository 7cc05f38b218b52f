package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/vocabook-api/models"
	mock_repository "github.com/andrewpaige1/vocabook-api/repository/mock"
)

func newStatsMock(t *testing.T, ctrl *gomock.Controller, driver string, setupMock func(*mock_repository.MockQueryI)) *StatsRepository {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewStatsRepository(db, driver)
}

func TestStatsRepository_StatusCounts(t *testing.T) {
	t.Parallel()

	rows := []models.StatusCount{
		{Status: models.StatusLearning, Count: 2},
		{Status: models.StatusMastered, Count: 2},
	}

	tests := []struct {
		name    string
		driver  string
		f       func(*mock_repository.MockQueryI)
		want    []models.StatusCount
		wantErr bool
	}{
		{
			name:   "success postgres placeholders",
			driver: "postgres",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), uint(1)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "user_id = $1")
						*dest.(*[]models.StatusCount) = rows
						return nil
					})
			},
			want: rows,
		},
		{
			name:   "success sqlite placeholders",
			driver: "sqlite3",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), uint(1)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "user_id = ?")
						return nil
					})
			},
			want: []models.StatusCount{},
		},
		{
			name:   "error select",
			driver: "postgres",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), uint(1)).
					Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newStatsMock(t, ctrl, tt.driver, tt.f)

			got, err := repo.StatusCounts(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
