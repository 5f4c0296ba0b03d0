package configs

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}

// Migrate runs the schema migration on the given connection. Split out of
// SetupDatabase so tests can migrate their own sqlite files.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&entity.User{},
		&entity.Branch{},
		&entity.MenuType{}, &entity.Menu{},
		&entity.Promotion{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Reservation{},
	)
	if err != nil {
		return err
	}

	// One live reservation per slot, enforced by the store itself. The
	// in-transaction availability check gives the friendly error; this
	// index is what actually closes the race between two writers.
	return gdb.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_reservations_live_slot
		ON reservations(branch, date, time, table_no)
		WHERE cancelled = 0 AND deleted_at IS NULL
	`).Error
}
