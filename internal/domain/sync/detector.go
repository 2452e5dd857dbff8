package sync

import (
	"leadsync/internal/domain/contact"
)

// Detector выполняет пополевое сравнение клиентских данных с серверной записью.
type Detector struct{}

// NewDetector создает новый детектор конфликтов
func NewDetector() *Detector {
	return &Detector{}
}

// Diff возвращает имена полей, по которым клиент и сервер расходятся,
// в порядке схемы. Поле, не присланное клиентом, расхождением не считается.
// Пустой результат означает отсутствие конфликта по содержимому.
func (d *Detector) Diff(client contact.Payload, server *contact.Contact) []string {
	fields := make([]string, 0, len(comparableFields))

	for _, f := range comparableFields {
		if f.differs(client, server) {
			fields = append(fields, f.name)
		}
	}

	return fields
}
