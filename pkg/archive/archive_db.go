package archive

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Document is a source document as it was first built.
type Document struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	Source    string
	CreatedAt time.Time
}

// Revision is the document after one edit. Seq 0 is the unedited document.
// Output holds the line format; Tree holds the JSON form, which survives
// edits that leave several nodes at the top level.
type Revision struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"uniqueIndex:idx_document_seq"`
	Seq        int  `gorm:"uniqueIndex:idx_document_seq"`
	Step       string
	Output     string
	Tree       string
	CreatedAt  time.Time
}

// getMigrations returns the list of migrations for the archive database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610190001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Document{}, &Revision{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&Revision{}, &Document{})
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration checks if the database schema is up to date.
func CheckMigration(db *gorm.DB) (bool, error) {
	// A missing migrations table means nothing has been applied yet. Use a
	// silent logger to avoid spurious warnings on fresh databases.
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error
	if err != nil {
		return false, nil
	}
	migrations := getMigrations()
	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
