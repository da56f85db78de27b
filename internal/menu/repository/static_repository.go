package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

type StaticRepository struct {
	items domain.Menu
}

func NewStaticRepository(items domain.Menu) *StaticRepository {
	return &StaticRepository{items: items}
}

func (r *StaticRepository) FindAll(ctx context.Context) (domain.Menu, error) {
	out := make(domain.Menu, len(r.items))
	copy(out, r.items)
	return out, nil
}

// DefaultMenu is the built-in menu used when no other source is configured.
func DefaultMenu() domain.Menu {
	return domain.Menu{
		{
			Name:        "Pizza",
			Ingredients: "pepperoni, mushroom, mozzarella",
			Price:       decimal.NewFromInt(14),
			ImgURL:      "/static/images/pizza.svg",
		},
		{
			Name:        "Hamburger",
			Ingredients: "beef, cheese, lettuce",
			Price:       decimal.NewFromInt(12),
			ImgURL:      "/static/images/burger.svg",
		},
		{
			Name:        "Beer",
			Ingredients: "grain, hops, yeast, water",
			Price:       decimal.NewFromInt(12),
			ImgURL:      "/static/images/beer.svg",
		},
		{
			Name:        "Salad",
			Ingredients: "lettuce, tomato, cucumber",
			Price:       decimal.NewFromInt(8),
			ImgURL:      "/static/images/salad.svg",
		},
		{
			Name:        "Soup",
			Ingredients: "broth, noodles, carrot",
			Price:       decimal.NewFromInt(5),
			ImgURL:      "/static/images/soup.svg",
		},
	}
}
