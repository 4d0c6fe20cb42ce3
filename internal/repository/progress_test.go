package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	mock_repository "github.com/DanRulev/codehero.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressMock(t *testing.T, ctrl *gomock.Controller, bind int, setupMock func(*mock_repository.MockQueryI)) *ProgressR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewProgressRepository(db, bind)
}

func TestProgressR_UpsertProgress(t *testing.T) {
	t.Parallel()

	record := models.ProgressRecord{
		UserID:         1,
		Language:       "javascript",
		LessonID:       2,
		Score:          3,
		TotalQuestions: 4,
		CompletedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	type args struct {
		ctx    context.Context
		record models.ProgressRecord
	}
	tests := []struct {
		name    string
		bind    int
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success: postgres placeholders",
			bind: sqlx.DOLLAR,
			args: args{
				ctx:    context.Background(),
				record: record,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, query string, args ...any) (sql.Result, error) {
						assert.Contains(t, query, "VALUES ($1, $2, $3, $4, $5, $6)")
						assert.Contains(t, query, "ON CONFLICT (user_id, language, lesson_id)")
						assert.Equal(t, []any{int64(1), "javascript", 2, 3, 4, record.CompletedAt}, args)
						return nil, nil
					},
				)
			},
			wantErr: false,
		},
		{
			name: "success: sqlite placeholders",
			bind: sqlx.QUESTION,
			args: args{
				ctx:    context.Background(),
				record: record,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, query string, _ ...any) (sql.Result, error) {
						assert.Contains(t, query, "VALUES (?, ?, ?, ?, ?, ?)")
						return nil, nil
					},
				)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			bind: sqlx.DOLLAR,
			args: args{
				ctx:    context.Background(),
				record: record,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressR := newProgressMock(t, ctrl, tt.bind, tt.f)

			err := progressR.UpsertProgress(tt.args.ctx, tt.args.record)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestProgressR_RecentProgress(t *testing.T) {
	t.Parallel()

	recent := []models.ProgressRecord{
		{UserID: 1, Language: "python", LessonID: 2, Score: 2, TotalQuestions: 3},
		{UserID: 1, Language: "python", LessonID: 1, Score: 3, TotalQuestions: 3},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.ProgressRecord
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "ORDER BY completed_at DESC")
						assert.Equal(t, []interface{}{int64(1), 5}, args)
						*dest.(*[]models.ProgressRecord) = recent
						return nil
					},
				)
			},
			want:    recent,
			wantErr: false,
		},
		{
			name: "success: empty",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    []models.ProgressRecord{},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressR := newProgressMock(t, ctrl, sqlx.DOLLAR, tt.f)

			got, err := progressR.RecentProgress(context.Background(), 1, 5)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressR_ProgressAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.ProgressAggregate
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*models.ProgressAggregate) = models.ProgressAggregate{LessonsCompleted: 3, CorrectAnswers: 7}
						return nil
					},
				)
			},
			want:    models.ProgressAggregate{LessonsCompleted: 3, CorrectAnswers: 7},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			want:    models.ProgressAggregate{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressR := newProgressMock(t, ctrl, sqlx.DOLLAR, tt.f)

			got, err := progressR.ProgressAggregate(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
