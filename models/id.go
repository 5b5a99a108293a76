package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an identifier as the backend sends it. Some collections use numeric
// ids and some use string object ids; both decode to the same string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Ref is a reference to another record. The backend stores it either as the
// raw identifier or populated with the referenced document, so both shapes
// are accepted and reduced to the identifier.
type Ref struct {
	ID   ID
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = Ref{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '{' {
		return json.Unmarshal(data, &r.ID)
	}

	var embedded struct {
		MongoID ID     `json:"_id"`
		ID      ID     `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return err
	}
	r.ID = embedded.MongoID
	if r.ID == "" {
		r.ID = embedded.ID
	}
	r.Name = embedded.Name
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(string(r.ID))
}

// IsZero reports whether the reference points nowhere.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

func (r Ref) String() string {
	return string(r.ID)
}
