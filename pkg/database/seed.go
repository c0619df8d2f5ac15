package database

import (
	"greencampus_backend/internal/model"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed 幂等地写入默认账号与示例数据，重复执行不会产生重复记录
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedEvents(db); err != nil {
		return err
	}
	return seedChallenges(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	db.Model(&model.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Username: "admin",
			Password: string(hashed),
			Role:     model.Admin,
			Name:     "Admin User",
			Email:    "admin@campus.edu",
			Level:    "System Administrator",
			Badges:   []string{},
			IsActive: true,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Default admin user created")
	}

	db.Model(&model.User{}).Where("username = ?", "student").Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		student := &model.User{
			Username: "student",
			Password: string(hashed),
			Role:     model.Student,
			Name:     "Alex Chen",
			Email:    "alex.chen@campus.edu",
			Points:   2840,
			Level:    "Eco-Champion",
			Badges:   []string{"Energy Saver", "Recycling Hero", "Green Commuter"},
			CO2Saved: 45.2,
			Rank:     3,
			IsActive: true,
		}
		if err := db.Create(student).Error; err != nil {
			return err
		}
		log.Println("Default student user created")
	}

	return nil
}

func seedEvents(db *gorm.DB) error {
	var count int64
	db.Model(&model.Event{}).Count(&count)
	if count > 0 {
		return nil
	}

	var admin model.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		return err
	}

	defaultEvents := []model.Event{
		{
			Name:        "Campus Clean-Up Day",
			Type:        model.EventWorkshop,
			Date:        time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
			Time:        "09:00",
			Location:    "Main Campus",
			Attendees:   50,
			Description: "Join us for a campus-wide sustainability cleanup event",
			CreatedBy:   admin.ID,
			IsActive:    true,
		},
		{
			Name:        "Renewable Energy Workshop",
			Type:        model.EventWorkshop,
			Date:        time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC),
			Time:        "15:00",
			Location:    "Science Building",
			Attendees:   30,
			Description: "Learn about solar and wind energy solutions",
			CreatedBy:   admin.ID,
			IsActive:    true,
		},
	}
	for i := range defaultEvents {
		if err := db.Create(&defaultEvents[i]).Error; err != nil {
			return err
		}
	}
	log.Println("Default events created")
	return nil
}

func seedChallenges(db *gorm.DB) error {
	var count int64
	db.Model(&model.Challenge{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaultChallenges := []model.Challenge{
		{
			Title:       "Plastic-Free Week",
			Description: "Avoid single-use plastics for 7 days",
			Points:      500,
			Duration:    "7 days",
			Difficulty:  model.DifficultyMedium,
			Type:        model.ChallengeWaste,
			IsActive:    true,
		},
		{
			Title:       "Energy Conservation Challenge",
			Description: "Reduce electricity usage by 20%",
			Points:      750,
			Duration:    "14 days",
			Difficulty:  model.DifficultyHard,
			Type:        model.ChallengeEnergy,
			IsActive:    true,
		},
		{
			Title:       "Sustainable Transport Week",
			Description: "Use only eco-friendly transportation",
			Points:      400,
			Duration:    "7 days",
			Difficulty:  model.DifficultyEasy,
			Type:        model.ChallengeTransport,
			IsActive:    true,
		},
	}
	for i := range defaultChallenges {
		if err := db.Create(&defaultChallenges[i]).Error; err != nil {
			return err
		}
	}
	log.Println("Default challenges created")
	return nil
}
