package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/siakadku/siakad-backend/internal/config"
	"github.com/siakadku/siakad-backend/internal/database"
	"github.com/siakadku/siakad-backend/internal/logger"
	"github.com/siakadku/siakad-backend/internal/repository"
	"github.com/siakadku/siakad-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Services ───────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	authService := service.NewAuthService(cfg, nil)
	userService := service.NewUserService(userRepo, roleRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Staff User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Role ID
	fmt.Print("Enter Role ID (default 1 = Admin): ")
	roleIDStr, _ := reader.ReadString('\n')
	roleIDStr = strings.TrimSpace(roleIDStr)
	roleID := 1
	if roleIDStr != "" {
		p, err := strconv.Atoi(roleIDStr)
		if err != nil {
			fmt.Println("Error: Role ID must be a number")
			return
		}
		roleID = p
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	user, err := userService.CreateUser(ctx, email, name, password, roleID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! User '%s' (%s) created with ID: %d\n", user.Name, user.Email, user.ID)
}
