package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) (domain.Menu, error) {
	query := `
		SELECT name, ingredients, price, imgUrl
		FROM MenuItem
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var menu domain.Menu
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.Name, &item.Ingredients, &item.Price, &item.ImgURL); err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		menu = append(menu, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return menu, nil
}
