package objects

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings the API sends either as a JSON array or
// as a string holding JSON array text. Anything unreadable is an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '"' {

		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		text = string(bytes.TrimSpace([]byte(text)))
		if text == "" {
			*l = StringList{}
			return nil
		}

		data = []byte(text)
	}

	var values []any
	if err := json.Unmarshal(data, &values); err != nil {
		*l = StringList{}
		return nil
	}

	list := make(StringList, 0, len(values))
	for _, value := range values {

		switch v := value.(type) {
		case nil:
			continue
		case string:
			list = append(list, v)
		default:
			list = append(list, fmt.Sprint(v))
		}
	}

	*l = list
	return nil
}
