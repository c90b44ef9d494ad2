package database

import (
	"github.com/fortuneehis/quickk/models"
	"gorm.io/gorm"
)

type Database struct {
	db           *gorm.DB
	userRepo     *UserRepo
	postRepo     *PostRepo
	donationRepo *DonationRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		userRepo:     NewUserRepo(db),
		postRepo:     NewPostRepo(db),
		donationRepo: NewDonationRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) DonationRepo() *DonationRepo {
	return d.donationRepo
}

// Migrate brings the schema in line with the model structs.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Donation{},
	)
}
