package listings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, p *models.Product) error {
	query := `INSERT INTO listings (id, name, price, material, rating, image, owner, description, stock)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var stock any
	if p.Stock != nil {
		stock = *p.Stock
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Price.String(), p.Material, float64(p.Rating), p.Image, p.Owner, p.Description, stock)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, material, rating, image, owner, description, stock FROM listings ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select listings: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var (
			p      models.Product
			price  string
			rating float64
			stock  sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Material, &rating, &p.Image, &p.Owner, &p.Description, &stock); err != nil {
			return nil, err
		}
		p.Price = models.NewPrice(price)
		p.Rating = models.Rating(rating)
		if stock.Valid {
			n := int(stock.Int64)
			p.Stock = &n
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}
