package main

import (
	"github.com/wilhan1771-lgtm/belajar/config"
	"github.com/wilhan1771-lgtm/belajar/models"
	"github.com/wilhan1771-lgtm/belajar/routes"
	"github.com/wilhan1771-lgtm/belajar/utils"

	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env opsional, di server env diisi langsung
	_ = godotenv.Load()

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.UdangJenis{},
		&models.ReceivingHeader{},
		&models.ReceivingPartai{},
		&models.InvoiceHeader{},
		&models.InvoiceDetail{},
	)
	config.EnsureIndexes()

	config.SeedJenis()
	config.SeedAdminUser()

	// override secret dari ENV
	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()
	r.Use(cors.Default())
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🦐 Receiving API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
