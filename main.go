package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stec/tenet/internal/config"
	"github.com/stec/tenet/internal/database"
	"github.com/stec/tenet/internal/models"
	"github.com/stec/tenet/internal/repositories"
	"github.com/stec/tenet/internal/services"
	"github.com/stec/tenet/pkg/logger"
)

// Demo harness. Wires configuration, logging, the database pool and the
// service facade, then optionally seeds an example tenant with a full
// user/storage/application/role chain.
func main() {
	// .env is optional; real deployments set environment variables.
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Environment})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	// Running against a stale schema risks data corruption, so a
	// migration failure aborts startup.
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}

	svc := services.NewTenetService(
		repositories.NewGORMTenantRepository(db),
		repositories.NewGORMUserRepository(db),
		repositories.NewGORMApplicationRepository(db),
		repositories.NewGORMStorageRepository(db),
		repositories.NewGORMRoleRepository(db),
		zlog,
	)

	ids, err := svc.GetTenantIDs()
	if err != nil {
		zlog.Fatal("Failed to list tenants", zap.Error(err))
	}
	zlog.Info("tenet data layer ready", zap.Int("tenants", len(ids)))

	viper.SetDefault("TENET_SEED_DEMO", false)
	if viper.GetBool("TENET_SEED_DEMO") {
		seedDemoTenant(svc, zlog)
	}
}

// seedDemoTenant creates an example tenant and exercises the whole
// facade once: user, storage, application and an administrator role.
func seedDemoTenant(svc *services.TenetService, zlog *zap.Logger) {
	tenant, err := svc.CreateTenant("Demo Tenant")
	if err != nil {
		zlog.Error("Failed to seed tenant", zap.Error(err))
		return
	}

	user, err := tenant.AddUser(models.UserMessage{
		Email:          "admin@demo.example",
		EmailVerified:  true,
		Password:       "change-me-now",
		EncryptionMode: models.EncryptionModeArgon2,
		FullName:       "Demo Admin",
	})
	if err != nil {
		zlog.Error("Failed to seed user", zap.Error(err))
		return
	}

	storage, err := tenant.AddStorage(models.NewJSONFileStorage("/var/lib/demo/shop.json", tenant.ID))
	if err != nil {
		zlog.Error("Failed to seed storage", zap.Error(err))
		return
	}

	application, err := tenant.AddApplication(models.ApplicationMessage{
		ApplicationType: models.ApplicationTypeShop,
		StorageID:       &storage.ID,
	})
	if err != nil {
		zlog.Error("Failed to seed application", zap.Error(err))
		return
	}

	if _, err := tenant.AddRole(models.RoleMessage{
		RoleType:      models.RoleTypeAdministrator,
		UserID:        &user.ID,
		ApplicationID: &application.ID,
	}); err != nil {
		zlog.Error("Failed to seed role", zap.Error(err))
		return
	}

	zlog.Info("seeded demo tenant",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("application_id", application.ID.String()))
}
