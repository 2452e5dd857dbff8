package contact

import (
	"context"
	"time"
)

// Repository — интерфейс хранилища контактов
type Repository interface {
	// Базовые CRUD операции
	List(ctx context.Context, ownerID int) ([]Contact, error)
	Get(ctx context.Context, ownerID, contactID int) (*Contact, error)
	GetByLocalID(ctx context.Context, ownerID int, localID string) (*Contact, error)
	Create(ctx context.Context, contact *Contact) (int, error)
	Update(ctx context.Context, contact *Contact) error
	SoftDelete(ctx context.Context, ownerID, contactID int) error

	// Поиск и фильтрация
	Search(ctx context.Context, ownerID int, criteria SearchCriteria) ([]Contact, error)
	GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]Contact, error)

	// Вспомогательные методы синхронизации
	SetLocalID(ctx context.Context, ownerID, contactID int, localID string) error
	LocalIDMap(ctx context.Context, ownerID int) (map[string]int, error)
	MaxUpdatedAt(ctx context.Context, ownerID int) (*time.Time, error)
}
