package service

import (
	"strings"

	"catalog/database"
	"catalog/database/model"
)

// ProductService wraps the product store with existence-checking semantics:
// update and delete act only on records that exist, and "not found" is an
// empty result, never an error.
type ProductService struct{}

func (s *ProductService) ListProducts() ([]model.Product, error) {
	db := database.GetDB()

	var products []model.Product
	err := db.Model(model.Product{}).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns nil when no record exists for the id.
func (s *ProductService) GetProduct(id int) (*model.Product, error) {
	db := database.GetDB()

	product := &model.Product{}
	err := db.Model(model.Product{}).First(product, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return product, nil
}

// SearchProducts matches the name case-insensitively as a substring.
// An empty namePart matches every record.
func (s *ProductService) SearchProducts(namePart string) ([]model.Product, error) {
	db := database.GetDB()

	var products []model.Product
	err := db.Model(model.Product{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(namePart)+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct persists the draft and returns it with the store-assigned id.
func (s *ProductService) CreateProduct(draft *model.Product) (*model.Product, error) {
	db := database.GetDB()

	draft.Id = 0
	if err := db.Create(draft).Error; err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateProduct replaces every mutable field of the record with the draft's
// values, keeping the identifier. Returns nil without writing when no record
// exists for the id.
func (s *ProductService) UpdateProduct(id int, draft *model.Product) (*model.Product, error) {
	db := database.GetDB()

	product := &model.Product{}
	err := db.Model(model.Product{}).First(product, id).Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	product.Name = draft.Name
	product.Description = draft.Description
	product.Price = draft.Price
	product.StockQuantity = draft.StockQuantity
	if err := db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the record and reports whether it existed.
func (s *ProductService) DeleteProduct(id int) (bool, error) {
	db := database.GetDB()

	product := &model.Product{}
	err := db.Model(model.Product{}).First(product, id).Error
	if database.IsNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if err := db.Delete(product).Error; err != nil {
		return false, err
	}
	return true, nil
}
