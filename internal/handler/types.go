package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber marks a request field that was neither a JSON number, a
// numeric string, nor null.
var ErrNotANumber = errors.New("invalid numeric value")

// OptionalInt is an integer request field that distinguishes "absent or
// null" from zero and accepts both JSON numbers and numeric strings
// (clients send either). Fractional values are truncated.
type OptionalInt struct {
	Value int64
	Set   bool
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	s, set, err := numericToken(b)
	if err != nil {
		return err
	}
	if !set {
		*o = OptionalInt{}
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
		v = int64(f)
	}

	*o = OptionalInt{Value: v, Set: true}
	return nil
}

// Ptr returns the value for a nullable bind, nil when unset.
func (o OptionalInt) Ptr() *int64 {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// OptionalFloat is the real-valued counterpart of OptionalInt.
type OptionalFloat struct {
	Value float64
	Set   bool
}

func (o *OptionalFloat) UnmarshalJSON(b []byte) error {
	s, set, err := numericToken(b)
	if err != nil {
		return err
	}
	if !set {
		*o = OptionalFloat{}
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	*o = OptionalFloat{Value: v, Set: true}
	return nil
}

func (o OptionalFloat) Ptr() *float64 {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// numericToken normalizes a raw JSON value to a parseable string.
// null and empty strings report not-set.
func numericToken(b []byte) (string, bool, error) {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return "", false, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		err := json.Unmarshal(b, &str)
		if err != nil {
			return "", false, err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return "", false, nil
		}
		return str, true, nil
	}
	return s, true, nil
}
