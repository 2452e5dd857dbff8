package contact

import (
	"time"
)

// Contact — синхронизируемая карточка контакта
type Contact struct {
	ID          int        `json:"id"`
	OwnerID     int        `json:"owner_id"`
	LocalID     *string    `json:"local_id,omitempty"`
	Name        string     `json:"name"`
	Title       string     `json:"title,omitempty"`
	Company     string     `json:"company,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Website     string     `json:"website,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
	SyncVersion int        `json:"sync_version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Payload — данные контакта, присланные клиентом. Nil-поле означает,
// что клиент не менял это поле; пустая строка — намеренная очистка.
type Payload struct {
	Name       *string    `json:"name,omitempty"`
	Title      *string    `json:"title,omitempty"`
	Company    *string    `json:"company,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Website    *string    `json:"website,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Interests  []string   `json:"interests,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// ApplyTo накладывает заданные поля на контакт. Nil-поля не трогает.
func (p Payload) ApplyTo(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Interests != nil {
		c.Interests = p.Interests
	}
	if p.CapturedAt != nil {
		c.CapturedAt = p.CapturedAt
	}
}

// Snapshot возвращает полезную нагрузку с текущими значениями контакта.
// Используется при отдаче серверной стороны конфликта клиенту.
func (c *Contact) Snapshot() Payload {
	name := c.Name
	title := c.Title
	company := c.Company
	phone := c.Phone
	email := c.Email
	website := c.Website
	notes := c.Notes

	return Payload{
		Name:       &name,
		Title:      &title,
		Company:    &company,
		Phone:      &phone,
		Email:      &email,
		Website:    &website,
		Notes:      &notes,
		Interests:  c.Interests,
		CapturedAt: c.CapturedAt,
	}
}

// SearchCriteria критерии поиска контактов
type SearchCriteria struct {
	Company  string
	Interest string
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}
