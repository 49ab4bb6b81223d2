package selftest

import (
	"fmt"

	"verity/pkg/confirm"
	"verity/pkg/unit"
)

// nameError is raised when an entry is renamed to nothing.
type nameError struct {
	id int
}

func (e *nameError) Error() string {
	return fmt.Sprintf("entry %d: empty name", e.id)
}

func createEntry() int {
	return 100
}

func renameEntry(id int, name string) {
	if name == "" {
		panic(&nameError{id: id})
	}
}

func deleteEntry(id int) {}

type tempEntry struct {
	id int
}

func (e *tempEntry) Setup() {
	e.id = createEntry()
}

func (e *tempEntry) Teardown() {
	deleteEntry(e.id)
}

func createTable() string {
	return "test_data_01"
}

func dropTable(name string) {}

type tempTable struct {
	name string
}

func (tt *tempTable) Setup() {
	tt.name = createTable()
}

func (tt *tempTable) Teardown() {
	dropTable(tt.name)
}

func registerSetup(reg *unit.Registry) {
	reg.Test("Test will run setup and teardown code", func(t *unit.T) {
		var entry tempEntry
		defer unit.Use(&entry)()
		renameEntry(entry.id, "")
	}, unit.ExpectingPanic(unit.KindOf[*nameError]()))

	reg.Test("Test will run multiple setup and teardown code", func(t *unit.T) {
		var entry1, entry2 tempEntry
		defer unit.Use(&entry1)()
		defer unit.Use(&entry2)()
		renameEntry(entry1.id, "abc")
		renameEntry(entry2.id, "def")
	})

	table1 := unit.Provide(reg, "Test suite setup/teardown 1", "Suite 1", &tempTable{})
	table2 := unit.Provide(reg, "Test suite setup/teardown 2", "Suite 1", &tempTable{})

	reg.Test("Test part 1 of suite", func(t *unit.T) {
		confirm.Equal("test_data_01", table1.name)
		confirm.Equal("test_data_01", table2.name)
	}, unit.InSuite("Suite 1"))

	reg.Test("Test part 2 of suite", func(t *unit.T) {
		panic(1)
	}, unit.InSuite("Suite 1"), unit.ExpectingPanic(unit.KindOf[int]()))
}
