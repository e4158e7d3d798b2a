package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cost is the stunt point cost scalar, kept verbatim as text. Clients send it
// as a JSON number or string; any cost whose text is a JSON number goes back
// out as a number, everything else ("1-3", "007", "+2") as a string.
type Cost string

// IsEmpty reports whether the cost is blank. A blank cost marks a workbook row as absent.
func (c Cost) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Int returns the cost as an integer when it is one.
func (c Cost) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(c)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c Cost) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(c))
	if isJSONNumber(s) {
		return []byte(s), nil
	}
	return json.Marshal(string(c))
}

// isJSONNumber reports whether s is a number literal in JSON grammar.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}

func (c *Cost) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cost(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cost must be a number or a string: %w", err)
	}
	*c = Cost(n.String())
	return nil
}
