package models

import (
	"log"

	"bitbucket.org/kuhldata/merchdash_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Product{},
		&SalesRecord{},
		&PricingRecord{},
		&CostRecord{},
		&InventoryRecord{},
		&ImportLog{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
