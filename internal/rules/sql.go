package rules

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

var errUnsupportedScan = errors.New("unsupported type for JSONB column")

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errUnsupportedScan
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// Value implements driver.Valuer for the definition JSONB column.
func (d RuleDefinition) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for the definition JSONB column.
func (d *RuleDefinition) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// Value implements driver.Valuer. A nil config is stored as NULL.
func (c BudgetConfig) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *BudgetConfig) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	return scanJSON(value, c)
}

// Value implements driver.Valuer.
func (u BudgetUsed) Value() (driver.Value, error) {
	if u == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(u)
}

// Scan implements sql.Scanner. NULL scans to an empty map.
func (u *BudgetUsed) Scan(value interface{}) error {
	*u = BudgetUsed{}
	return scanJSON(value, u)
}
