package main

import (
	"os"

	"github.com/jj55j7/fridge-mate/config"
	"github.com/jj55j7/fridge-mate/controllers"
	"github.com/jj55j7/fridge-mate/routes"
	"github.com/jj55j7/fridge-mate/services"
	"github.com/jj55j7/fridge-mate/utils"

	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	table := services.DefaultPairingTable()
	if path := os.Getenv("PAIRING_TABLE_FILE"); path != "" {
		loaded, err := services.LoadPairingTable(path)
		if err != nil {
			utils.L().Fatal("failed to load pairing table", zap.String("path", path), zap.Error(err))
		}
		table = loaded
		utils.L().Info("pairing table loaded", zap.String("path", path))
	}
	matchSvc := services.NewMatchService(table)

	rek, err := services.NewRecognitionService()
	if err != nil {
		// Keyword fallback still works without Rekognition.
		utils.L().Warn("rekognition unavailable, keyword fallback only", zap.Error(err))
	}

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		utils.L().Warn("push notifications disabled", zap.Error(err))
		push = nil
	}
	services.InitNotify(config.DB, hub, push)

	disc := services.NewDiscoveryService(config.DB, matchSvc)

	r := routes.SetupRouter(
		controllers.NewFoodController(rek, matchSvc),
		controllers.NewDiscoverController(disc, matchSvc),
		controllers.NewMatchController(matchSvc),
		controllers.NewDeviceController(push),
		controllers.NewRealtimeController(hub),
	)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	utils.L().Info("fridge-mate listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		utils.L().Fatal("server exited", zap.Error(err))
	}
}
