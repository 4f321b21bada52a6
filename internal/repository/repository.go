package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidEnum    = errors.New("invalid enum value")
)

// StringArray is an ordered list of strings stored as a postgres text[].
// Other dialects keep the same array literal in a text column.
type StringArray []string

func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}
	var p pq.StringArray
	if err := p.Scan(src); err != nil {
		return err
	}
	*a = StringArray(p)
	return nil
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return pq.StringArray(a).Value()
}

func (StringArray) GormDataType() string {
	return "text[]"
}

func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func toStrings(a StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

// nullable maps "" to NULL for optional enum columns.
func nullable[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func fromNullable[T ~string](s *string) T {
	if s == nil {
		return ""
	}
	return T(*s)
}

func checkEnum(column, value string, valid bool) error {
	if !valid {
		return fmt.Errorf("%w: %s=%q", ErrInvalidEnum, column, value)
	}
	return nil
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// userSummaryColumns limits preloaded users to the embedded projection.
func userSummaryColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// Entities lists every relational entity; sqlite and mysql are migrated from it.
func Entities() []interface{} {
	return []interface{}{
		&UserEntity{},
		&BeneficiaryEntity{},
		&DonationEntity{},
		&EventEntity{},
		&VolunteerEntity{},
		&ContactEntity{},
	}
}
