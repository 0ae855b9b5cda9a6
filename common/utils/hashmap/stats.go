package hashmap

import (
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

// Stats is a snapshot of a LinkedHashTable's size and bucket occupancy.
type Stats struct {
	Size          int     `json:"size"`
	Capacity      int     `json:"capacity"`
	LoadThreshold float64 `json:"load_threshold"`
	LoadFactor    float64 `json:"load_factor"`   // Size divided by Capacity.
	Resizes       int     `json:"resizes"`       // The number of times the table has grown.
	EmptyBuckets  int     `json:"empty_buckets"` // The number of buckets holding no entries.
	LongestChain  int     `json:"longest_chain"` // The length of the fullest bucket.
}

// Stats walks every bucket and returns a snapshot of the table.
func (t *LinkedHashTable[K, V]) Stats() Stats {
	stats := Stats{
		Size:          t.size,
		Capacity:      len(t.buckets),
		LoadThreshold: t.LoadThreshold(),
		LoadFactor:    float64(t.size) / float64(len(t.buckets)),
		Resizes:       t.resizes,
	}

	for _, bucket := range t.buckets {
		if len(bucket) == 0 {
			stats.EmptyBuckets += 1
		}

		stats.LongestChain = max(stats.LongestChain, len(bucket))
	}

	return stats
}

func (s Stats) String() string {
	m, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}

	return string(m)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (s Stats) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(s, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}

// MarshalLogObject lets the stats be attached to a zap log entry with zap.Object.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", s.Size)
	enc.AddInt("capacity", s.Capacity)
	enc.AddFloat64("load_threshold", s.LoadThreshold)
	enc.AddFloat64("load_factor", s.LoadFactor)
	enc.AddInt("resizes", s.Resizes)
	enc.AddInt("empty_buckets", s.EmptyBuckets)
	enc.AddInt("longest_chain", s.LongestChain)
	return nil
}
