package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/internal/repository"
	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/pagination"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	input := &CreateUserInput{
		Name:      "Ana",
		Email:     " Ana@Example.com",
		TaxID:     "12345678901",
		Phone:     "11999999999",
		Birthdate: time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("stores normalized email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "ana@example.com", mock.Anything).Return(appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool { return u.Email == "ana@example.com" })).Return(nil)

		u, err := NewUserService(repo).CreateUser(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.Equal(t, "1990-04-01", time.Time(u.Birthdate).Format(time.DateOnly))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "ana@example.com", mock.Anything).Return(nil, models.User{ID: uuid.New()})

		_, err := NewUserService(repo).CreateUser(ctx, input)
		require.Error(t, err)
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate tax id reported by the store is a conflict", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "ana@example.com", mock.Anything).Return(appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound), nil)
		repo.On("Create", ctx, mock.Anything).Return(appErr.New(appErr.CodeConflict, appErr.MsgEntityConflict))

		_, err := NewUserService(repo).CreateUser(ctx, input)
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
	})
}

func TestListUsersPaging(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	total := int64(35)
	records := make([]models.User, 10)
	want := pagination.Params{Page: 2, PerPage: 10, Order: pagination.OrderAsc, Count: true}
	repo.On("List", ctx, repository.UserFilter{Name: "an"}, want).Return(records, &total, nil)

	page, err := NewUserService(repo).ListUsers(ctx, repository.UserFilter{Name: "an"}, pagination.Params{Page: 2, PerPage: 10, Count: true})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Len(t, page.Records, 10)
	require.NotNil(t, page.Count)
	assert.Equal(t, int64(35), *page.Count)
	assert.Equal(t, 10, want.Offset())
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(mockUserRepo)
	repo.On("GetByID", ctx, id, mock.Anything).Return(nil, models.User{ID: id, Name: "Ana", Phone: "11999999999", Email: "ana@example.com"})
	repo.On("Update", ctx, mock.Anything).Return(nil)

	name := "Ana Maria"
	u, err := NewUserService(repo).UpdateUser(ctx, id, &UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", u.Name)
	assert.Equal(t, "11999999999", u.Phone)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(mockUserRepo)
	repo.On("GetByID", ctx, id, mock.Anything).Return(appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound), nil)

	_, err := NewUserService(repo).GetUser(ctx, id)
	var ae *appErr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, appErr.CodeNotFound, ae.Code)
	assert.Equal(t, "user does not exist", ae.Message)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(mockUserRepo)
	repo.On("Delete", ctx, id).Return(appErr.New(appErr.CodeConflict, appErr.MsgForeignKeyFail))

	err := NewUserService(repo).DeleteUser(ctx, id)
	assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
}
