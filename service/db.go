package service

import (
	"embed"
	"time"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"nftmarket/conf"
	"nftmarket/log"
	"nftmarket/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open connects to the configured database and brings the schema up to date
func Open(c *conf.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.DB.Driver {
	case "postgres":
		dialector = postgres.Open(c.DB.DSN)
	case "mysql":
		dialector = mysql.Open(c.DB.DSN + "?charset=utf8mb4&parseTime=True&loc=Local")
	default:
		return nil, errors.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{PrepareStmt: true, Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if c.DB.Driver == "postgres" {
		err = migratePostgres(db, c.DB.ResetDB)
	} else {
		err = migrateAuto(db, c.DB.ResetDB)
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// postgres schema is versioned with goose migrations
func migratePostgres(db *gorm.DB, reset bool) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if reset {
		log.Warn("resetting database")
		if err = goose.Reset(sqlDB, "migrations"); err != nil {
			return errors.Wrap(err, "reset database")
		}
	}
	if err = goose.Up(sqlDB, "migrations"); err != nil {
		return errors.Wrap(err, "migrate database")
	}
	return nil
}

// migrateAuto syncs the table structure of the models to the database
func migrateAuto(db *gorm.DB, reset bool) error {
	if reset {
		log.Warn("resetting database")
		if err := model.DropTable(db); err != nil {
			return errors.Wrap(err, "reset database")
		}
	}
	return errors.Wrap(model.Migrate(db), "migrate database")
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
