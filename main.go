package main

import (
	"log"
	"os"

	"agendai/config"
	"agendai/controllers"
	dbpkg "agendai/db"
	"agendai/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("AGENDAI_CONFIG")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg := config.Get(configPath)
	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	db, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, cfg)

	log.Printf("AgendAI listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
