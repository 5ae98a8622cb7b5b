package service

import (
	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type CatalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

func (s *CatalogService) List() []model.Product {
	return s.store.Products()
}

func (s *CatalogService) GetByID(id int) (model.Product, error) {
	return s.store.ProductByID(id)
}

func (s *CatalogService) BestSellers() []model.Product {
	return s.store.BestSellers()
}

func (s *CatalogService) Create(req dto.CreateProductRequest) (model.Product, error) {
	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Date:        req.Date,
		Bestseller:  req.Bestseller,
		Quantity:    req.Quantity,
	}
	id, err := s.store.AddProduct(product)
	if err != nil {
		return model.Product{}, err
	}
	product.ID = id
	return product, nil
}

func (s *CatalogService) Update(id int, req dto.UpdateProductRequest) (model.Product, error) {
	product, err := s.store.ProductByID(id)
	if err != nil {
		return model.Product{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SubCategory != nil {
		product.SubCategory = *req.SubCategory
	}
	if req.Bestseller != nil {
		product.Bestseller = *req.Bestseller
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	if err := s.store.UpdateProduct(product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

func (s *CatalogService) Delete(id int) error {
	return s.store.DeleteProduct(id)
}
