package service

import (
	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type ContactService struct {
	store *store.Store
}

func NewContactService(st *store.Store) *ContactService {
	return &ContactService{store: st}
}

func (s *ContactService) ListAll() []model.ContactMessage {
	return s.store.Contacts()
}

func (s *ContactService) Add(req dto.AddContactRequest) model.ContactMessage {
	return s.store.AddContact(req.Name, req.Email, req.Message)
}

func (s *ContactService) MarkRead(id string) error {
	return s.store.MarkContactRead(id)
}

func (s *ContactService) Delete(id string) error {
	return s.store.DeleteContact(id)
}
