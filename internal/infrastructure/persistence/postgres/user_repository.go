package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
	"github.com/gamevault/gamevault-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	// Usuários inativos continuam consultáveis por id para joins históricos
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByConfirmationToken(ctx context.Context, token string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("token_confirmation = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	// Soft delete: vira o status ao invés de remover a linha
	result := db.Model(&UserModel{}).
		Where("id = ? AND status = ?", id, string(entities.UserStatusActive)).
		Update("status", string(entities.UserStatusInactive))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.User, string], error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{}).Order("id asc").Limit(limit + 1)

	// Cursor inclusivo: a chave informada é a primeira da página
	if cursor != nil {
		query = query.Where("id >= ?", *cursor)
	}

	if err := query.Find(&models).Error; err != nil {
		return repositories.Page[*entities.User, string]{}, err
	}

	users, err := r.toEntities(models)
	if err != nil {
		return repositories.Page[*entities.User, string]{}, err
	}

	return repositories.PageFrom(users, limit, func(u *entities.User) string { return u.ID }), nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:                user.ID,
		Email:             user.Email.String(),
		Username:          user.Username,
		Name:              user.Name,
		PasswordHash:      user.PasswordHash,
		Description:       user.Description,
		ProfileImage:      user.ProfileImage,
		BannerImage:       user.BannerImage,
		TokenConfirmation: user.TokenConfirmation,
		EmailVerified:     user.EmailVerified,
		Status:            string(user.Status),
		Role:              string(user.Role),
		BannedReason:      user.BannedReason,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:                model.ID,
		Email:             email,
		Username:          model.Username,
		Name:              model.Name,
		PasswordHash:      model.PasswordHash,
		Description:       model.Description,
		ProfileImage:      model.ProfileImage,
		BannerImage:       model.BannerImage,
		TokenConfirmation: model.TokenConfirmation,
		EmailVerified:     model.EmailVerified,
		Status:            entities.UserStatus(model.Status),
		Role:              entities.Role(model.Role),
		BannedReason:      model.BannedReason,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
