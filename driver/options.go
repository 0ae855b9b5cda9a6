package driver

import (
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/scusemua/linked-hashtable/common/configuration"
)

const (
	DefaultUUIDCount = 2000

	// DefaultLargeLoadThreshold is the load threshold of the large scenario's table unless a flag overrides it.
	DefaultLargeLoadThreshold = 0.5
)

// Options configures the demonstration driver.
//
// TableOptions configures the table of the large UUID scenario. The other scenarios use the fixed
// capacities and load thresholds they were written for.
type Options struct {
	config.LoggerOptions       `yaml:",inline" json:"logger_options"`
	configuration.TableOptions `yaml:",inline" json:"table_options"`

	UUIDCount int  `name:"uuids" json:"uuids" yaml:"uuids" description:"The number of random UUID keys inserted by the large scenario."`
	JSON      bool `name:"json" json:"json" yaml:"json" description:"Print the scenario reports as JSON instead of styled text."`

	// PrettyPrintOptions, when true, instructs the driver to pretty-print the Options struct when the program
	// first begins running.
	PrettyPrintOptions bool `name:"pretty_print_options" json:"pretty_print_options" yaml:"pretty_print_options"`
}

// DefaultOptions returns Options populated with the driver's defaults.
func DefaultOptions() Options {
	tableOptions := configuration.DefaultTableOptions()
	tableOptions.LoadThreshold = DefaultLargeLoadThreshold

	return Options{
		TableOptions: tableOptions,
		UUIDCount:    DefaultUUIDCount,
	}
}

// Validate is called by config.ValidateOptions once the flags have been parsed.
func (o *Options) Validate() error {
	if err := o.TableOptions.Validate(); err != nil {
		return errors.Wrap(err, "invalid table options")
	}

	if o.UUIDCount < 0 {
		return errors.Errorf("the number of UUID keys must be non-negative, got %d", o.UUIDCount)
	}

	return nil
}

func (o *Options) String() string {
	out, err := json.Marshal(o)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (o *Options) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	out, err := json.MarshalIndent(o, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(out)
}
