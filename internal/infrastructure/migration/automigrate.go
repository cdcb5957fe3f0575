package migration

import (
	"fmt"

	"gorm.io/gorm"

	"billu/internal/infrastructure/persistence/models"
	appLogger "billu/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.ServiceCenterModel{},
		&models.TechnicianModel{},
		&models.TicketModel{},
		&models.TransactionModel{},
	}
}

// Run applies gorm automigration for all models.
func Run(db *gorm.DB) error {
	for _, model := range AutoMigrateModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	appLogger.Info("database migration complete")
	return nil
}

// Status reports which tables exist.
func Status(db *gorm.DB) map[string]bool {
	status := make(map[string]bool)
	for _, model := range AutoMigrateModels() {
		if t, ok := model.(interface{ TableName() string }); ok {
			status[t.TableName()] = db.Migrator().HasTable(model)
		}
	}
	return status
}
