package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LiuBangJie/online-ordering/internal/models"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) Create(member *models.Member) error {
	return r.DB.Create(member).Error
}

func (r *MemberRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Member{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// FindByEmail returns (nil, nil) when no member has the given email.
func (r *MemberRepository) FindByEmail(email string) (*models.Member, error) {
	var member models.Member
	if err := r.DB.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) FindByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := r.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}
