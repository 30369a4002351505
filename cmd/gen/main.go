// Command gen generates the typed GORM query package for the relational store.
package main

import (
	"time"

	"careconnect/internal/infra/persistence/model"
	"careconnect/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

// DeviceQuerier is the push fan-out lookup.
type DeviceQuerier interface {
	// SELECT * FROM @@table WHERE user_id IN @userIDs AND is_active = true AND deleted_at IS NULL
	FindActiveByUsers(userIDs []string) ([]gen.T, error)
}

// LocationQuerier holds the trail queries used by history and the retention sweep.
type LocationQuerier interface {
	// SELECT * FROM @@table WHERE patient_id = @patientID AND recorded_at >= @since ORDER BY recorded_at DESC LIMIT @limit
	FindSince(patientID string, since time.Time, limit int) ([]gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.ApplyBasic(postgres.Models()...)
	g.ApplyInterface(func(DeviceQuerier) {}, model.UserDeviceModel{})
	g.ApplyInterface(func(LocationQuerier) {}, model.LocationPointModel{})

	g.Execute()
}
