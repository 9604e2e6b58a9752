package entities

import "errors"

// Category agrupa produtos do catálogo
type Category struct {
	ID       string
	Name     string
	Products []Product
}

// Validate valida regras de negócio da entidade Category
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
