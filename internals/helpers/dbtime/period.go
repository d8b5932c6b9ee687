// file: internals/helpers/dbtime/period.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const periodLayout = "2006-01"

// Period is a calendar month stored as "YYYY-MM".
type Period struct{ time.Time }

// PeriodOf returns the month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Time: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// ParsePeriod parses "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	var p Period
	return p, p.parse(s)
}

func (p Period) String() string {
	if p.Time.IsZero() {
		return ""
	}
	return p.Format(periodLayout)
}

// Next returns the following month.
func (p Period) Next() Period {
	return Period{Time: p.AddDate(0, 1, 0)}
}

// Window returns [start, end) of the period in loc.
func (p Period) Window(loc *time.Location) (time.Time, time.Time) {
	return MonthWindow(p.Year(), p.Month(), loc)
}

func (p *Period) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		p.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return fmt.Errorf("period: expected YYYY-MM, got %q", s)
	}
	p.Time = t
	return nil
}

// Scan: terima string/[]byte "YYYY-MM" atau time.Time
func (p *Period) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*p = PeriodOf(x)
		return nil
	case []byte:
		return p.parse(string(x))
	case string:
		return p.parse(x)
	case nil:
		p.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("period: unsupported Scan type %T", v)
	}
}

func (p Period) Value() (driver.Value, error) {
	if p.Time.IsZero() {
		return nil, nil
	}
	return p.String(), nil
}

func (Period) GormDataType() string {
	return "string"
}

func (Period) GormDBDataType(*gorm.DB, *schema.Field) string {
	return "varchar(7)"
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return p.parse(s)
}
