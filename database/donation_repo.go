package database

import (
	"github.com/fortuneehis/quickk/models"
	"gorm.io/gorm"
)

type DonationRepo struct {
	db *gorm.DB
}

func NewDonationRepo(db *gorm.DB) *DonationRepo {
	return &DonationRepo{db}
}

// FindAll returns every donation, oldest first. The dashboard reverses the
// order client-side.
func (r *DonationRepo) FindAll() ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.Order("donated_at ASC").Find(&donations).Error
	return donations, err
}

// Add inserts a new donation into the database
func (r *DonationRepo) Add(donation *models.Donation) error {
	return r.db.Create(donation).Error
}
