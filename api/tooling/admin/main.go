// Command admin provides operational commands for the service: running
// database migrations, seeding data and creating users out of band.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/mail"
	"os"
	"time"

	"github.com/hudsor01/tenantflow/business/domain/userbus"
	"github.com/hudsor01/tenantflow/business/domain/userbus/stores/usercache"
	"github.com/hudsor01/tenantflow/business/domain/userbus/stores/userdb"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb"
	"github.com/hudsor01/tenantflow/business/sdk/sqldb/migrate"
	"github.com/hudsor01/tenantflow/business/types/name"
	"github.com/hudsor01/tenantflow/business/types/password"
	"github.com/hudsor01/tenantflow/business/types/phone"
	"github.com/hudsor01/tenantflow/business/types/role"
	"github.com/hudsor01/tenantflow/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"tenantflow"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: migrate, seed, create-user")
		return nil
	}

	switch os.Args[1] {
	case "migrate":
		return runMigrate(ctx, db)
	case "seed":
		return runSeed(ctx, db)
	case "create-user":
		userBus := userbus.NewCore(usercache.NewStore(log, userdb.NewStore(log, db), time.Minute))
		return runCreateUser(ctx, userBus, os.Args[2:])
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func runMigrate(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := migrate.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	fmt.Println("migrations complete")
	return nil
}

func runSeed(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := migrate.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	fmt.Println("seed data complete")
	return nil
}

func runCreateUser(ctx context.Context, ub *userbus.Core, args []string) error {
	cmd := flag.NewFlagSet("create-user", flag.ExitOnError)
	emailStr := cmd.String("email", "", "User email (Required)")
	passStr := cmd.String("password", "", "User password (Required)")
	nameStr := cmd.String("name", "", "User full name (Required)")
	roleStr := cmd.String("role", "OWNER", "User role (ADMIN, OWNER, TENANT)")
	cmd.Parse(args)

	if *emailStr == "" || *passStr == "" || *nameStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required fields")
	}

	n, err := name.Parse(*nameStr)
	if err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	addr, err := mail.ParseAddress(*emailStr)
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	r, err := role.Parse(*roleStr)
	if err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	p, err := password.Parse(*passStr)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	newUser := userbus.NewUser{
		Name:     n,
		Email:    *addr,
		Phone:    phone.Null{},
		Role:     r,
		Password: p,
	}

	usr, err := ub.Create(ctx, newUser)
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: User created!\nID: %s\nEmail: %s\nRole: %s\n", usr.ID, usr.Email.Address, usr.Role)
	return nil
}

//go run api/tooling/admin/main.go migrate
//go run api/tooling/admin/main.go create-user -email "owner@tenantflow.app" -password "Owner123!" -name "Property Owner" -role "OWNER"
