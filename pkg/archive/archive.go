// Package archive records documents and every revision produced by editing
// them in a SQLite database.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spicery/htmldom/pkg/dom"
)

// ErrNotFound is returned when a document or revision does not exist.
var ErrNotFound = errors.New("not found in archive")

// Archive wraps the database connection.
type Archive struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the archive at dbPath. Call Migrate before
// first use.
func Open(dbPath string, log zerolog.Logger) (*Archive, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Archive{db: db, log: log}, nil
}

func (a *Archive) Migrate() error {
	return Migrate(a.db)
}

func (a *Archive) CheckMigration() (bool, error) {
	return CheckMigration(a.db)
}

func (a *Archive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveDocument stores the source lines of a document together with its
// unedited rendering as revision 0.
func (a *Archive) SaveDocument(name string, lines []string, tree *dom.Tree) (*Document, error) {
	doc := &Document{Name: name, Source: strings.Join(lines, "\n")}
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		rev, err := newRevision(doc.ID, "build", tree)
		if err != nil {
			return err
		}
		return tx.Create(rev).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save document %q: %w", name, err)
	}
	a.log.Debug().Uint("document", doc.ID).Str("name", name).Msg("saved document")
	return doc, nil
}

// AddRevision appends the current rendering of tree as the next revision.
func (a *Archive) AddRevision(docID uint, step string, tree *dom.Tree) (*Revision, error) {
	rev, err := newRevision(docID, step, tree)
	if err != nil {
		return nil, err
	}
	err = a.db.Transaction(func(tx *gorm.DB) error {
		var last Revision
		if err := tx.Where("document_id = ?", docID).Order("seq DESC").First(&last).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("document %d: %w", docID, ErrNotFound)
			}
			return err
		}
		rev.Seq = last.Seq + 1
		return tx.Create(rev).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add revision: %w", err)
	}
	a.log.Debug().Uint("document", docID).Int("seq", rev.Seq).Str("step", step).Msg("stored revision")
	return rev, nil
}

// Documents lists every document, oldest first.
func (a *Archive) Documents() ([]Document, error) {
	var docs []Document
	if err := a.db.Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Revisions lists the revisions of one document in order.
func (a *Archive) Revisions(docID uint) ([]Revision, error) {
	var revs []Revision
	if err := a.db.Where("document_id = ?", docID).Order("seq").Find(&revs).Error; err != nil {
		return nil, err
	}
	if len(revs) == 0 {
		return nil, fmt.Errorf("document %d: %w", docID, ErrNotFound)
	}
	return revs, nil
}

// Latest returns the most recent revision of a document.
func (a *Archive) Latest(docID uint) (*Revision, error) {
	var rev Revision
	err := a.db.Where("document_id = ?", docID).Order("seq DESC").First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("document %d: %w", docID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// Restore rebuilds the tree stored for revision seq of a document.
func (a *Archive) Restore(docID uint, seq int) (*dom.Tree, error) {
	var rev Revision
	err := a.db.Where("document_id = ? AND seq = ?", docID, seq).First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("document %d revision %d: %w", docID, seq, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return dom.ReadTreeJSON(strings.NewReader(rev.Tree))
}

func newRevision(docID uint, step string, tree *dom.Tree) (*Revision, error) {
	var buf bytes.Buffer
	if err := dom.PrintTreeJSON(tree, &buf, &dom.PrintOptions{}); err != nil {
		return nil, fmt.Errorf("failed to encode tree: %w", err)
	}
	return &Revision{DocumentID: docID, Step: step, Output: tree.Render(), Tree: buf.String()}, nil
}
