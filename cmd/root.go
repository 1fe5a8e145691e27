// Package cmd wires the server together: configuration, database,
// repository, controllers, and the Gin router.
package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sweetshop-api/config"
	"sweetshop-api/controllers"
	"sweetshop-api/database"
	"sweetshop-api/middleware"
	"sweetshop-api/models"
	"sweetshop-api/routes"
)

var (
	flagPort string
	flagDB   string
)

var rootCmd = &cobra.Command{
	Use:   "sweetshop-api",
	Short: "Inventory management API for a sweet shop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		// Flags override config and environment.
		if flagPort != "" {
			cfg.Port = flagPort
		}
		if flagDB != "" {
			cfg.DatabasePath = flagDB
		}
		return runServer(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagPort, "port", "", "port to listen on (default: 8080)")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "path to the SQLite database file")
}

func runServer(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := database.Seed(db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	repo := models.NewSweetRepository(db)
	sweets := controllers.NewSweetController(repo)

	router := gin.Default()
	router.Use(middleware.RequestID())
	routes.RegisterRoutes(router, sweets)

	log.Printf("Sweet Shop Management System running on port %s...", cfg.Port)
	return router.Run(":" + cfg.Port)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
