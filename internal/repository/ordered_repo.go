package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEmptyReorder is returned when a reorder call carries no pairs.
var ErrEmptyReorder = errors.New("reorder requires a non-empty list of {id, order} pairs")

// OrderPair assigns a new display position to one row.
type OrderPair struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// OrderedRepository is the one generic ordered-collection store behind every
// content manager. It is parameterized by the model type and the boolean
// column that gates public visibility (is_active, or is_published for
// articles). Rows sort by sort_order ASC with id ASC as the stable tiebreak;
// sort_order values may repeat or leave gaps.
type OrderedRepository[T any] struct {
	db         *gorm.DB
	visibility string
}

func NewOrderedRepository[T any](db *gorm.DB, visibilityColumn string) *OrderedRepository[T] {
	return &OrderedRepository[T]{db: db, visibility: visibilityColumn}
}

// ListAll returns every row regardless of visibility, in display order.
func (r *OrderedRepository[T]) ListAll() ([]T, error) {
	var list []T
	err := r.db.Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

// ListVisible returns the rows the public site renders.
func (r *OrderedRepository[T]) ListVisible() ([]T, error) {
	var list []T
	err := r.db.Where(r.visibility+" = ?", true).Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *OrderedRepository[T]) Get(id uint) (*T, error) {
	item := new(T)
	if err := r.db.First(item, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts the row and reloads it so column defaults (visibility
// flags, sort_order) come back populated. Columns the caller names in
// supplied are forced into the INSERT even when zero-valued; without that,
// an explicit false on a default:true column would be dropped from the
// statement and the database default would win.
func (r *OrderedRepository[T]) Create(item *T, supplied ...string) error {
	tx := r.db
	if len(supplied) > 0 {
		cols := make([]string, 0, len(supplied)+2)
		cols = append(cols, supplied...)
		cols = append(cols, "created_at", "updated_at")
		tx = tx.Select(cols)
	}
	if err := tx.Create(item).Error; err != nil {
		return err
	}
	return r.db.First(item).Error
}

// Update applies a partial patch of column -> value and returns the fresh
// row. Missing ids surface gorm.ErrRecordNotFound.
func (r *OrderedRepository[T]) Update(id uint, columns map[string]any) (*T, error) {
	item := new(T)
	if err := r.db.First(item, id).Error; err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := r.db.Model(item).Updates(columns).Error; err != nil {
			return nil, err
		}
		if err := r.db.First(item, id).Error; err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Delete is idempotent: removing an absent id is success. Surviving rows
// are not renumbered.
func (r *OrderedRepository[T]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}

// Reorder applies every (id, order) assignment in one transaction and
// returns the full re-sorted collection. Ids that match no row are skipped;
// the returned set lets the client resync stale drag state.
func (r *OrderedRepository[T]) Reorder(pairs []OrderPair) ([]T, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyReorder
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range pairs {
			if err := tx.Model(new(T)).Where("id = ?", p.ID).Update("sort_order", p.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListAll()
}
