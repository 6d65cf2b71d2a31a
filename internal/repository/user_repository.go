package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hotel-booking/engine/internal/models"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// UserFilter narrows user listings; zero fields are ignored.
type UserFilter struct {
	Name      string
	Email     string
	TaxID     string
	Phone     string
	Birthdate *time.Time
}

var userColumns = pagination.Columns{
	"id":        "users.id",
	"name":      "users.name",
	"email":     "users.email",
	"taxId":     "users.tax_id",
	"phone":     "users.phone",
	"birthdate": "users.birthdate",
	"createdAt": "users.created_at",
	"updatedAt": "users.updated_at",
}

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	List(ctx context.Context, f UserFilter, p pagination.Params) ([]models.User, *int64, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(dest).Error; err != nil {
		return translate(err, "get")
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, f UserFilter, p pagination.Params) ([]models.User, *int64, error) {
	var filters []scope
	if f.Name != "" {
		filters = append(filters, containsFold("users.name", f.Name))
	}
	if f.Email != "" {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(users.email) = LOWER(?)", f.Email)
		})
	}
	if f.TaxID != "" {
		filters = append(filters, equals("users.tax_id", f.TaxID))
	}
	if f.Phone != "" {
		filters = append(filters, equals("users.phone", f.Phone))
	}
	if f.Birthdate != nil {
		filters = append(filters, equals("users.birthdate", f.Birthdate.Format(time.DateOnly)))
	}
	return listPage[models.User](ctx, r.db, p, userColumns, filters)
}
