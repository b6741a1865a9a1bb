package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillType distinguishes wholesale (party-backed) bills from retail cash sales.
// Parties carry the same classification.
type BillType int

const (
	BillTypeWholesale BillType = 0
	BillTypeRetail    BillType = 1
)

func (b BillType) String() string {
	names := [...]string{"WHOLESALE", "RETAIL"}
	if int(b) < 0 || int(b) >= len(names) {
		return "WHOLESALE"
	}
	return names[b]
}

func (b BillType) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BillType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*b = BillType(i)
		return nil
	}
	switch str {
	case "WHOLESALE":
		*b = BillTypeWholesale
	case "RETAIL":
		*b = BillTypeRetail
	}
	return nil
}

func (b BillType) Value() (driver.Value, error) {
	return int64(b), nil
}

func (b *BillType) Scan(value interface{}) error {
	if value == nil {
		*b = BillTypeWholesale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*b = BillType(v)
	case int:
		*b = BillType(v)
	}
	return nil
}
