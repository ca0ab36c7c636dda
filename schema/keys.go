package schema

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magn/core"
)

// Keys is a YAML document of key declarations, used when a source cannot
// describe its own keys or to override what it reports.
//
//	tables:
//	  - name: years
//	    primary_keys: []
//	    foreign_keys:
//	      - column: reviewId
//	        ref_table: reviews
//	        ref_column: reviewId
type Keys struct {
	Tables []TableKeys `yaml:"tables"`
}

// TableKeys holds the declarations for one table.
type TableKeys struct {
	Name        string       `yaml:"name"`
	PrimaryKeys []string     `yaml:"primary_keys"`
	ForeignKeys []ForeignKey `yaml:"foreign_keys"`
}

// LoadKeys decodes key declarations from r. Unknown fields are rejected.
// An empty document yields empty Keys.
func LoadKeys(r io.Reader) (*Keys, error) {
	var k Keys
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&k); err != nil {
		if errors.Is(err, io.EOF) {
			return &Keys{}, nil
		}
		return nil, fmt.Errorf("schema: decode keys: %w", err)
	}
	for i, t := range k.Tables {
		if t.Name == "" {
			return nil, &core.SchemaError{Msg: fmt.Sprintf("keys entry %d has no table name", i)}
		}
	}
	return &k, nil
}

// Apply replaces the key declarations of every table named in k. Naming a
// table that is not in d is a *core.SchemaError.
func (k *Keys) Apply(d *Dataset) error {
	for _, tk := range k.Tables {
		t, ok := d.Table(tk.Name)
		if !ok {
			return &core.SchemaError{Table: tk.Name, Msg: "keys declared for an unknown table"}
		}
		t.PrimaryKeys = append([]string(nil), tk.PrimaryKeys...)
		t.ForeignKeys = append([]ForeignKey(nil), tk.ForeignKeys...)
	}
	return nil
}
