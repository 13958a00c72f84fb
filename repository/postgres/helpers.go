package postgres

import (
	"time"

	"github.com/focusdo/backend/domain"
)

// pgtypeDate scans a nullable DATE column without committing the domain
// type to pgx scanning internals.
type pgtypeDate struct {
	value *time.Time
}

func (d *pgtypeDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.value = nil
	case time.Time:
		t := v
		d.value = &t
	}
	return nil
}

func (d pgtypeDate) toDomain() *domain.Date {
	if d.value == nil {
		return nil
	}
	date := domain.NewDate(*d.value)
	return &date
}

func dueDateArg(d *domain.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.Time
}
