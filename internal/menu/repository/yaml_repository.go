package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

type yamlMenuItem struct {
	Name        string  `yaml:"name"`
	Ingredients string  `yaml:"ingredients"`
	Price       float64 `yaml:"price"`
	ImgURL      string  `yaml:"imgUrl"`
}

// YAMLRepository reads a top-level YAML list of menu entries.
type YAMLRepository struct {
	path string
}

func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

func (r *YAMLRepository) FindAll(ctx context.Context) (domain.Menu, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}

	var raw []yamlMenuItem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing menu file: %w", err)
	}

	menu := make(domain.Menu, 0, len(raw))
	for i, item := range raw {
		if item.Name == "" {
			return nil, fmt.Errorf("menu entry %d: name is required", i)
		}
		menu = append(menu, domain.MenuItem{
			Name:        item.Name,
			Ingredients: item.Ingredients,
			Price:       decimal.NewFromFloat(item.Price),
			ImgURL:      item.ImgURL,
		})
	}

	return menu, nil
}
