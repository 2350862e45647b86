package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// StringList is a string slice stored as a JSON column.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty JSON array
// so MySQL never sees NULL in a not-null JSON column.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// SalaryRange is one salary band inside an industry insight.
type SalaryRange struct {
	Role     string          `json:"role"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Median   decimal.Decimal `json:"median"`
	Location string          `json:"location"`
}

// SalaryRangeList is a salary band slice stored as a JSON column.
type SalaryRangeList []SalaryRange

// Value implements driver.Valuer.
func (l SalaryRangeList) Value() (driver.Value, error) {
	if l == nil {
		l = SalaryRangeList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *SalaryRangeList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
