package sync

import (
	"sort"

	"leadsync/internal/domain/contact"
)

// FieldCategory управляет выбором стратегии разрешения конфликта.
type FieldCategory int

const (
	// CategoryIdentity - поля целостности, клиент их не перезаписывает
	CategoryIdentity FieldCategory = iota
	// CategoryMergeable - поля, допускающие слияние обеих сторон
	CategoryMergeable
	// CategoryContact - контактные данные, клиент считается свежее
	CategoryContact
	// CategoryBusiness - бизнес-данные, клиент выигрывает только при большом отставании сервера
	CategoryBusiness
	// CategoryOther - все остальное
	CategoryOther
)

const (
	FieldName      = "name"
	FieldTitle     = "title"
	FieldCompany   = "company"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldWebsite   = "website"
	FieldNotes     = "notes"
	FieldInterests = "interests"

	FieldID        = "id"
	FieldOwnerID   = "owner_id"
	FieldCreatedAt = "created_at"
)

// fieldSpec описывает одно сравниваемое поле: его категорию и компаратор.
// differs возвращает true, только если клиент прислал поле и значения расходятся.
type fieldSpec struct {
	name     string
	category FieldCategory
	differs  func(client contact.Payload, server *contact.Contact) bool
}

func scalarDiffers(get func(contact.Payload) *string, server func(*contact.Contact) string) func(contact.Payload, *contact.Contact) bool {
	return func(client contact.Payload, srv *contact.Contact) bool {
		v := get(client)
		return v != nil && *v != server(srv)
	}
}

// comparableFields — фиксированная упорядоченная схема сравниваемых полей.
// Порядок задает порядок имен в ConflictFields.
var comparableFields = []fieldSpec{
	{FieldName, CategoryBusiness, scalarDiffers(
		func(p contact.Payload) *string { return p.Name },
		func(c *contact.Contact) string { return c.Name })},
	{FieldTitle, CategoryBusiness, scalarDiffers(
		func(p contact.Payload) *string { return p.Title },
		func(c *contact.Contact) string { return c.Title })},
	{FieldCompany, CategoryBusiness, scalarDiffers(
		func(p contact.Payload) *string { return p.Company },
		func(c *contact.Contact) string { return c.Company })},
	{FieldPhone, CategoryContact, scalarDiffers(
		func(p contact.Payload) *string { return p.Phone },
		func(c *contact.Contact) string { return c.Phone })},
	{FieldEmail, CategoryContact, scalarDiffers(
		func(p contact.Payload) *string { return p.Email },
		func(c *contact.Contact) string { return c.Email })},
	{FieldWebsite, CategoryContact, scalarDiffers(
		func(p contact.Payload) *string { return p.Website },
		func(c *contact.Contact) string { return c.Website })},
	{FieldNotes, CategoryMergeable, scalarDiffers(
		func(p contact.Payload) *string { return p.Notes },
		func(c *contact.Contact) string { return c.Notes })},
	{FieldInterests, CategoryMergeable, interestsDiffer},
}

// fieldCategories дополняет схему полями, которые не приходят в Payload,
// но могут оказаться в списке конфликтных при ручном разрешении.
var fieldCategories = map[string]FieldCategory{
	FieldID:        CategoryIdentity,
	FieldOwnerID:   CategoryIdentity,
	FieldCreatedAt: CategoryIdentity,
}

func init() {
	for _, f := range comparableFields {
		fieldCategories[f.name] = f.category
	}
}

// CategoryOf возвращает категорию поля, CategoryOther для неизвестных имен.
func CategoryOf(field string) FieldCategory {
	if cat, ok := fieldCategories[field]; ok {
		return cat
	}
	return CategoryOther
}

// interestsDiffer сравнивает интересы как множества: одинаковый состав
// в другом порядке конфликтом не является.
func interestsDiffer(client contact.Payload, server *contact.Contact) bool {
	if client.Interests == nil {
		return false
	}

	a := append([]string(nil), client.Interests...)
	b := append([]string(nil), server.Interests...)
	if len(a) != len(b) {
		return true
	}

	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}

	return false
}
