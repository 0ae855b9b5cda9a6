package driver

import (
	"fmt"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
	"github.com/scusemua/linked-hashtable/common/queue"
	"github.com/scusemua/linked-hashtable/common/utils/hashmap"
)

// Entry is one "key -> value" line of a report.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Step is one titled block of a report.
type Step struct {
	Title    string   `json:"title"`
	Entries  []Entry  `json:"entries,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// Report is the outcome of running a Scenario.
type Report struct {
	Name  string        `json:"name"`
	Steps []*Step       `json:"steps"`
	Stats hashmap.Stats `json:"stats"`

	// Error is the message of a failure the scenario expects and reports, such as a lookup of a missing key.
	Error string `json:"error,omitempty"`
}

func (r *Report) addStep(title string) *Step {
	step := &Step{Title: title}
	r.Steps = append(r.Steps, step)
	return step
}

// Scenario builds a table, exercises it, and describes what happened.
//
// Run returns an error only when the table misbehaves.
type Scenario struct {
	Name string
	Run  func() (*Report, error)
}

// Runner runs submitted scenarios in the order they were submitted.
type Runner struct {
	pending *queue.Fifo[Scenario]

	log logger.Logger
}

func NewRunner() *Runner {
	runner := &Runner{
		pending: queue.NewFifo[Scenario](4),
	}

	config.InitLogger(&runner.log, runner)

	return runner
}

// Submit queues scenarios to be run by the next call to Run.
func (r *Runner) Submit(scenarios ...Scenario) {
	for _, scenario := range scenarios {
		r.pending.Enqueue(scenario)
	}
}

// Pending returns the number of scenarios that have been submitted but not run.
func (r *Runner) Pending() int {
	return r.pending.Len()
}

// Run runs every pending scenario and returns their reports.
//
// If a scenario fails, Run returns the reports of the scenarios that completed before it along with the error.
// The scenarios queued after the failing one stay pending.
func (r *Runner) Run() ([]*Report, error) {
	reports := make([]*Report, 0, r.pending.Len())
	for {
		scenario, ok := r.pending.Dequeue()
		if !ok {
			return reports, nil
		}

		r.log.Debug("Running scenario \"%s\". Scenarios still pending: %d.", scenario.Name, r.pending.Len())

		report, err := scenario.Run()
		if err != nil {
			r.log.Error("Scenario \"%s\" failed: %v", scenario.Name, err)
			return reports, errors.Wrapf(err, "scenario \"%s\"", scenario.Name)
		}

		r.log.Debug("Scenario \"%s\" finished. Stats: %v", scenario.Name, report.Stats)
		reports = append(reports, report)
	}
}

// Scenarios returns every scenario of the demonstration in the order they are meant to run.
func Scenarios(opts *Options) []Scenario {
	return []Scenario{
		{Name: "Unique Keys", Run: UniqueKeys},
		{Name: "Large", Run: func() (*Report, error) { return Large(opts.Capacity, opts.LoadThreshold, opts.UUIDCount) }},
		{Name: "Contains", Run: ContainsChecks},
		{Name: "Provided", Run: Provided},
	}
}

// UniqueKeys inserts 21 names into a small table. "Tom" and "Sam" are inserted twice, so their values end up
// being 9 and 21.
func UniqueKeys() (*Report, error) {
	table, err := hashmap.New[hashmap.String, int](10, 0.5)
	if err != nil {
		return nil, err
	}

	names := []string{
		"Tom", "Casey", "Adam", "James", "Erik", "Dan", "Jeremy", "Bill", "Tom", "Kenny", "David",
		"Sam", "Robert", "Lisa", "Margaret", "Della", "Marc", "Tiffany", "Kori", "Jack", "Sam",
	}
	for i, name := range names {
		table.Put(hashmap.String(name), i+1)
	}

	report := &Report{Name: "Unique Keys"}
	if err := list(table, report.addStep("Contents")); err != nil {
		return nil, err
	}

	report.Stats = table.Stats()
	return report, nil
}

// Large inserts n random UUID keys, each mapped to its string form, into a table built from the given options.
func Large(capacity int, loadThreshold float64, n int) (*Report, error) {
	table, err := hashmap.New[hashmap.UUID, string](capacity, loadThreshold)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		id := hashmap.NewUUID()
		table.Put(id, id.String())
	}

	if table.Len() != n {
		return nil, errors.Errorf("expected %d entries after inserting %d distinct keys, found %d", n, n, table.Len())
	}

	report := &Report{Name: "Large"}
	if err := list(table, report.addStep("Contents")); err != nil {
		return nil, err
	}

	report.Stats = table.Stats()
	return report, nil
}

// ContainsChecks fills a table with statements and probes it for two present and two absent keys.
func ContainsChecks() (*Report, error) {
	table, err := hashmap.New[hashmap.String, bool](20, 0.5)
	if err != nil {
		return nil, err
	}

	statements := []struct {
		text  string
		value bool
	}{
		{"I'm a boy", true},
		{"Candy is healthy", false},
		{"This class is awesome", true},
		{"I'm a brown noser", true},
		{"F grade is passing", false},
		{"This class is difficult", false},
		{"I enjoyed this project", true},
		{"I love RIT Hockey", true},
		{"Writing unit tests is hard", true},
		{"I can do it!", true},
		{"I'm taking 7 classes this semester", false},
		{"ReHash() works properly", true},
		{"Prof. Brown likes video games", true},
		{"Latest C# Version is 4.5", false},
	}
	for _, statement := range statements {
		table.Put(hashmap.String(statement.text), statement.value)
	}

	report := &Report{Name: "Contains"}

	probes := report.addStep("Probes")
	for _, probe := range []string{"I can do it!", "Books are expensive!", "Writing unit tests is hard", "I'm a scary dude!"} {
		if table.Contains(hashmap.String(probe)) {
			probes.Messages = append(probes.Messages, fmt.Sprintf("Key: %s is in the table", probe))
		} else {
			probes.Messages = append(probes.Messages, fmt.Sprintf("Key: %s is not in the table", probe))
		}
	}

	if err := list(table, report.addStep("Contents")); err != nil {
		return nil, err
	}

	report.Stats = table.Stats()
	return report, nil
}

// Provided adds three names, lists them, adds a fourth name and updates an existing one, lists them again, and
// finally looks up one present and one absent name.
func Provided() (*Report, error) {
	table, err := hashmap.New[hashmap.String, string](4, 0.5)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: "Provided"}

	table.Put("Joe", "Doe")
	table.Put("Jane", "Brain")
	table.Put("Chris", "Swiss")
	if err := list(table, report.addStep("Initial contents")); err != nil {
		return nil, err
	}

	table.Put("Wavy", "Gravy")
	table.Put("Chris", "Bliss")
	if err := list(table, report.addStep("After adding Wavy and updating Chris")); err != nil {
		return nil, err
	}

	lookups := report.addStep("Lookups")
	for _, name := range []hashmap.String{"Jane", "John"} {
		value, err := table.Get(name)
		if errors.Is(err, hashmap.ErrKeyNotFound) {
			report.Error = err.Error()
			break
		} else if err != nil {
			return nil, err
		}

		lookups.Entries = append(lookups.Entries, Entry{Key: name.String(), Value: value})
	}

	report.Stats = table.Stats()
	return report, nil
}

// list appends every key of the table, along with the value Get returns for it, to the step.
func list[K interface {
	hashmap.Hashable[K]
	fmt.Stringer
}, V any](table *hashmap.LinkedHashTable[K, V], step *Step) error {
	for key := range table.Keys() {
		value, err := table.Get(key)
		if err != nil {
			return errors.Wrapf(err, "key \"%s\" was yielded by Keys", key.String())
		}

		step.Entries = append(step.Entries, Entry{Key: key.String(), Value: fmt.Sprint(value)})
	}

	return nil
}
