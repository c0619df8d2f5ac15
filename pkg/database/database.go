package database

import (
	"fmt"
	"greencampus_backend/internal/config"
	"greencampus_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过迁移，除非显式传入 -migrate
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 执行表结构迁移，参与关系使用显式连接表以携带联合主键
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Challenge{}, "Participants", &model.ChallengeParticipant{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	)
}
