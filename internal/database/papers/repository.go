// Package papers provides database operations for groups and papers.
//
// The repository implements the GroupExporter interface used by the
// import pipeline and the stores used by the HTTP controllers.
//
// # Usage
//
//	repo := papers.NewRepository(db)
//	paper, err := repo.GetPaperByID("01J8...")
package papers

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

// Repository handles all group and paper database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new papers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Export persists a freshly imported group with its papers, appending it
// after the existing groups. Implements importers.GroupExporter.
func (r *Repository) Export(group *entities.Group) error {
	position, err := r.nextGroupPosition()
	if err != nil {
		return err
	}
	group.Position = position

	if err := r.db.Create(group).Error; err != nil {
		return fmt.Errorf("failed to save group %q: %w", group.Name, err)
	}
	return nil
}

func (r *Repository) nextGroupPosition() (int, error) {
	var max *int
	err := r.db.Model(&entities.Group{}).Select("MAX(position)").Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to determine group position: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// GetAllGroups retrieves every group with its papers, in stored order.
func (r *Repository) GetAllGroups() ([]entities.Group, error) {
	var groups []entities.Group
	err := r.db.Preload("Papers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("position ASC").Find(&groups).Error
	return groups, err
}

// GetGroupByID retrieves one group with its papers.
func (r *Repository) GetGroupByID(id uint) (*entities.Group, error) {
	var group entities.Group
	err := r.db.Preload("Papers", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup removes a group and all papers it holds.
func (r *Repository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&entities.Paper{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Group{}, id).Error
	})
}

// GetAllPapers retrieves every paper across all groups, in stored order.
func (r *Repository) GetAllPapers() ([]entities.Paper, error) {
	var list []entities.Paper
	err := r.db.Order("group_id ASC, position ASC").Find(&list).Error
	return list, err
}

// GetPaperByID retrieves one paper by its identifier.
func (r *Repository) GetPaperByID(id string) (*entities.Paper, error) {
	var paper entities.Paper
	err := r.db.Where("id = ?", id).First(&paper).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// UpdatePaperNotes replaces the user notes of one paper.
func (r *Repository) UpdatePaperNotes(id string, notes string) error {
	result := r.db.Model(&entities.Paper{}).Where("id = ?", id).Update("notes", notes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPaperImportance flips the importance flag of one paper.
func (r *Repository) SetPaperImportance(id string, important bool) error {
	result := r.db.Model(&entities.Paper{}).Where("id = ?", id).Update("important", important)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePaper removes one paper.
func (r *Repository) DeletePaper(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Paper{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPapers returns the number of papers across all groups.
func (r *Repository) CountPapers() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Paper{}).Count(&count).Error
	return count, err
}

// GetCollection reads the entire persisted collection.
func (r *Repository) GetCollection() (entities.Collection, error) {
	groups, err := r.GetAllGroups()
	if err != nil {
		return entities.Collection{}, err
	}
	if groups == nil {
		groups = []entities.Group{}
	}
	return entities.Collection{Groups: groups}, nil
}

// ReplaceCollection swaps the whole stored collection for the given one
// in a single transaction. Callers must have run the identity repair pass
// first; the papers table enforces identifier uniqueness via its primary
// key, so an unrepaired collection would fail to insert.
func (r *Repository) ReplaceCollection(collection entities.Collection) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Paper{}).Error; err != nil {
			return fmt.Errorf("failed to clear papers: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&entities.Group{}).Error; err != nil {
			return fmt.Errorf("failed to clear groups: %w", err)
		}

		for gi := range collection.Groups {
			group := collection.Groups[gi]
			group.ID = 0
			group.Position = gi
			for pi := range group.Papers {
				group.Papers[pi].GroupID = 0
				group.Papers[pi].Position = pi
			}
			if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("failed to save group %q: %w", group.Name, err)
			}
		}
		return nil
	})
}
