package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Timestamps are stored as RFC3339 UTC text so values parse the same
// way regardless of driver and sort correctly as strings.
const timeLayout = time.RFC3339

type Sweet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SweetInput carries the caller-supplied fields for create and update;
// id and timestamps are assigned by the repository.
type SweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// SearchFilters are optional predicates ANDed together; zero values
// impose no constraint. Price bounds are inclusive.
type SearchFilters struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetRepository issues parameterized SQL against the sweets table
// through an injected database handle.
type SweetRepository struct {
	db *sql.DB
}

func NewSweetRepository(db *sql.DB) *SweetRepository {
	return &SweetRepository{db: db}
}

const sweetColumns = "id, name, category, price, quantity, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateSweet(row rowScanner) (*Sweet, error) {
	var s Sweet
	var createdAt, updatedAt string
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SweetRepository) collect(rows *sql.Rows) ([]Sweet, error) {
	defer rows.Close()

	sweets := make([]Sweet, 0)
	for rows.Next() {
		s, err := hydrateSweet(rows)
		if err != nil {
			return nil, err
		}
		sweets = append(sweets, *s)
	}
	return sweets, rows.Err()
}

// FindAll returns every sweet, newest first. Rows created in the same
// second share a created_at value, so id breaks the tie.
func (r *SweetRepository) FindAll() ([]Sweet, error) {
	rows, err := r.db.Query("SELECT " + sweetColumns + " FROM sweets ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing sweets: %w", err)
	}
	return r.collect(rows)
}

// FindByID returns the sweet with the given id, or ErrSweetNotFound.
func (r *SweetRepository) FindByID(id int64) (*Sweet, error) {
	row := r.db.QueryRow("SELECT "+sweetColumns+" FROM sweets WHERE id = ?", id)
	s, err := hydrateSweet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSweetNotFound
		}
		return nil, fmt.Errorf("getting sweet %d: %w", id, err)
	}
	return s, nil
}

// Create inserts a new sweet and re-reads it so the caller observes
// the row exactly as persisted.
func (r *SweetRepository) Create(input SweetInput) (*Sweet, error) {
	now := time.Now().UTC().Format(timeLayout)
	result, err := r.db.Exec(
		"INSERT INTO sweets (name, category, price, quantity, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		input.Name, input.Category, input.Price, input.Quantity, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating sweet: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new sweet id: %w", err)
	}
	return r.FindByID(id)
}

// UpdateByID overwrites the four caller-supplied fields and refreshes
// updated_at. Returns ErrSweetNotFound when no row matched.
func (r *SweetRepository) UpdateByID(id int64, input SweetInput) (*Sweet, error) {
	now := time.Now().UTC().Format(timeLayout)
	result, err := r.db.Exec(
		"UPDATE sweets SET name = ?, category = ?, price = ?, quantity = ?, updated_at = ? WHERE id = ?",
		input.Name, input.Category, input.Price, input.Quantity, now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating sweet %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating sweet %d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrSweetNotFound
	}
	return r.FindByID(id)
}

// DeleteByID removes the row and reports whether one was actually
// removed, distinguishing "already gone" from "removed now".
func (r *SweetRepository) DeleteByID(id int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM sweets WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting sweet %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting sweet %d: %w", id, err)
	}
	return affected > 0, nil
}

// Search applies the provided filters, same ordering as FindAll.
func (r *SweetRepository) Search(filters SearchFilters) ([]Sweet, error) {
	query := "SELECT " + sweetColumns + " FROM sweets WHERE 1=1"
	args := make([]any, 0, 4)

	if filters.Name != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+filters.Name+"%")
	}
	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}
	if filters.MinPrice != nil {
		query += " AND price >= ?"
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query += " AND price <= ?"
		args = append(args, *filters.MaxPrice)
	}

	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching sweets: %w", err)
	}
	return r.collect(rows)
}

// AdjustQuantity applies a signed stock change with a floor at zero:
// negative delta for a purchase, positive for a restock. The check and
// the write are a single conditional UPDATE, so concurrent adjustments
// on the same row cannot interleave between a read and a write.
func (r *SweetRepository) AdjustQuantity(id int64, delta int) (*Sweet, error) {
	now := time.Now().UTC().Format(timeLayout)
	result, err := r.db.Exec(
		"UPDATE sweets SET quantity = quantity + ?, updated_at = ? WHERE id = ? AND quantity + ? >= 0",
		delta, now, id, delta,
	)
	if err != nil {
		return nil, fmt.Errorf("adjusting sweet %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("adjusting sweet %d: %w", id, err)
	}
	if affected == 0 {
		// Zero rows means either the sweet is missing or the guard
		// rejected the delta; probe existence to tell them apart.
		var one int
		err := r.db.QueryRow("SELECT 1 FROM sweets WHERE id = ?", id).Scan(&one)
		if err == sql.ErrNoRows {
			return nil, ErrSweetNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("adjusting sweet %d: %w", id, err)
		}
		return nil, ErrInsufficientStock
	}
	return r.FindByID(id)
}
