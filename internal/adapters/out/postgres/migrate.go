package postgres

import (
	"fueldelivery/internal/adapters/out/postgres/agentrepo"
	"fueldelivery/internal/adapters/out/postgres/catalogrepo"
	"fueldelivery/internal/adapters/out/postgres/orderrepo"
	"fueldelivery/internal/adapters/out/postgres/stationrepo"
	"fueldelivery/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&stationrepo.StationDTO{},
		&stationrepo.StationFuelTypeDTO{},
		&stationrepo.InventoryDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&catalogrepo.FuelPriceDTO{},
	}
}

// Migrate creates or alters the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
