package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	return scanJSONList(value, l)
}

// RoleList is stored as a JSON array in a text column.
type RoleList []Role

func (l RoleList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *RoleList) Scan(value any) error {
	return scanJSONList(value, l)
}

func (l RoleList) Contains(r Role) bool {
	for _, v := range l {
		if v == r {
			return true
		}
	}
	return false
}

func scanJSONList(value any, dest any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	}
	return fmt.Errorf("unsupported list column type %T", value)
}
