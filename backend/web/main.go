package main

import (
	"log"
	"net/http"
	"os"

	"churchtrack.com/churchtrack/backend/db"
	"churchtrack.com/churchtrack/backend/handlers"
	"churchtrack.com/churchtrack/backend/middlewares"
	"churchtrack.com/churchtrack/backend/models"
	"github.com/gin-gonic/gin"
)

func main() {
	dsn := os.Getenv("DSN")
	secret := os.Getenv("CHURCHTRACK_SIGNING_SECRET")
	if dsn == "" || secret == "" {
		log.Fatal("DSN and CHURCHTRACK_SIGNING_SECRET are required")
	}

	conn, err := db.Connect(dsn)
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := conn.AutoMigrate(
		&models.User{}, &models.Service{},
		&models.Attendance{}, &models.PendingUser{},
	); err != nil {
		log.Fatal("failed to migrate schema:", err)
	}

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	handlers.RegisterAuth(r, conn, secret)

	protected := r.Group("/", middlewares.Authentication(secret))
	handlers.RegisterAttendance(protected, conn)
	handlers.RegisterServices(protected, conn)

	admin := protected.Group("/", middlewares.AdminOnly())
	handlers.RegisterPendingUsers(admin, conn)

	listen := os.Getenv("LISTEN")
	if listen == "" {
		listen = ":8080"
	}
	r.Run(listen)
}
