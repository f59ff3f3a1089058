package config

import (
	"fmt"
	"os"

	"github.com/jj55j7/fridge-mate/models"
	"github.com/jj55j7/fridge-mate/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.L().Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.L().Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodPost{},
		&models.MatchRecord{},
		&models.Conversation{},
		&models.Message{},
		&models.UserDevice{},
	)
	if err != nil {
		utils.L().Fatal("AutoMigrate failed", zap.Error(err))
	}
}
