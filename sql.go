package i64

import (
	"database/sql/driver"

	"github.com/pkg/errors"
)

// Scan implements the [sql.Scanner] interface.
// The following source types are supported: int64, float64, string,
// []byte (decimal text) and nil (which is an error).
// Use [NullInt64] for nullable columns.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int64) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*x = New(value)
	case float64:
		*x, err = NewFromFloat64(value)
	case string:
		*x, err = Parse(value)
	case []byte:
		// Drivers return numeric text as raw bytes, not as a buffer.
		*x, err = Parse(string(value))
	case nil:
		err = errors.Wrap(ErrInvalidInput, "converting NULL to i64.Int64")
	default:
		err = errors.Wrapf(ErrInvalidInput, "converting %T to i64.Int64", value)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int64) Value() (driver.Value, error) {
	return x.v, nil
}

// NullInt64 represents an integer that can be null.
// Its zero value is null.
// NullInt64 is not thread-safe.
type NullInt64 struct {
	Int64 Int64
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullInt64) Scan(value any) error {
	if value == nil {
		n.Int64 = Int64{}
		n.Valid = false
		return nil
	}
	err := n.Int64.Scan(value)
	if err != nil {
		n.Int64 = Int64{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullInt64) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int64.Value()
}
