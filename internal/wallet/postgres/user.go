package postgres

import (
	usermodel "github.com/frahmantamala/payment-wallet/internal/core/datamodel/user"
	walletpkg "github.com/frahmantamala/payment-wallet/internal/wallet"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) walletpkg.RepositoryAPI {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(userID int64) (*usermodel.User, error) {
	var u usermodel.User
	err := r.db.First(&u, userID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Save(u *usermodel.User) error {
	return r.db.Save(u).Error
}
