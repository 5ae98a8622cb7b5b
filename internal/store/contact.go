package store

import (
	"github.com/google/uuid"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func (s *Store) Contacts() []model.ContactMessage {
	return s.contacts.snapshot()
}

// AddContact stores an inbound message, unread, with a generated id.
func (s *Store) AddContact(name, email, message string) model.ContactMessage {
	msg := model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
		Date:    s.now().UnixMilli(),
	}

	c := &s.contacts
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, msg)
	c.persist()
	return msg
}

func (s *Store) MarkContactRead(id string) error {
	c := &s.contacts
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			c.persist()
			return nil
		}
	}
	return ErrContactNotFound
}

func (s *Store) DeleteContact(id string) error {
	c := &s.contacts
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrContactNotFound
}
