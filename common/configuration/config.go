package configuration

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/scusemua/linked-hashtable/common/utils/hashmap"
)

// TableOptions includes the configuration parameters used to construct a hashmap.LinkedHashTable.
type TableOptions struct {
	Capacity      int     `name:"capacity"       json:"capacity"       yaml:"capacity"       description:"The initial number of buckets of the table."`
	LoadThreshold float64 `name:"load-threshold" json:"load-threshold" yaml:"load-threshold" description:"The fraction of the table's capacity that, once reached by its size, causes the table to grow. Must be in (0, 1]."`
}

// DefaultTableOptions returns TableOptions populated with hashmap.DefaultCapacity and hashmap.DefaultLoadThreshold.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Capacity:      hashmap.DefaultCapacity,
		LoadThreshold: hashmap.DefaultLoadThreshold,
	}
}

// Validate returns an error wrapping hashmap.ErrInvalidConfiguration if the options cannot be used to build a table.
func (opts *TableOptions) Validate() error {
	return hashmap.ValidateConfiguration(opts.Capacity, opts.LoadThreshold)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (opts *TableOptions) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(opts, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}

func (opts *TableOptions) Clone() *TableOptions {
	clone := *opts
	return &clone
}

func (opts *TableOptions) String() string {
	m, err := json.Marshal(opts)
	if err != nil {
		panic(err)
	}

	return string(m)
}
