package samplesheet

import (
	"fmt"

	"github.com/liserjrqlxue/goUtil/textUtil"
	simple_util "github.com/liserjrqlxue/simple-util"
)

// adapter table columns
var adapterTitle = []string{"LibraryPrepKit", "Key", "Value"}

// AdapterTable maps a library prep kit to its ordered [Settings] lines.
type AdapterTable struct {
	settings map[string][]Setting
	kits     []string
}

func NewAdapterTable() *AdapterTable {
	return &AdapterTable{
		settings: make(map[string][]Setting),
	}
}

// Add appends a setting to kit, or replaces the value of an existing key in place.
func (t *AdapterTable) Add(kit, key, value string) {
	settings, ok := t.settings[kit]
	if !ok {
		t.kits = append(t.kits, kit)
	}
	for i := range settings {
		if settings[i].Key == key {
			settings[i].Value = value
			return
		}
	}
	t.settings[kit] = append(settings, Setting{Key: key, Value: value})
}

// Settings returns the settings of kit in table order.
func (t *AdapterTable) Settings(kit string) ([]Setting, error) {
	settings, ok := t.settings[kit]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLibraryPrepKit, kit)
	}
	return settings, nil
}

// Kits returns kit names in table order.
func (t *AdapterTable) Kits() []string {
	return append([]string(nil), t.kits...)
}

// LoadAdapterTable reads a tab separated adapter table with title LibraryPrepKit, Key, Value.
func LoadAdapterTable(path string) (*AdapterTable, error) {
	if !simple_util.FileExists(path) {
		return nil, fmt.Errorf("%w: adapter table %q", ErrInputNotFound, path)
	}
	items, title := textUtil.File2MapArray(path, "\t", nil)
	for _, col := range adapterTitle {
		if indexOf(title, col) < 0 {
			return nil, fmt.Errorf("%w: %q lacks column %s", ErrMalformedAdapterTable, path, col)
		}
	}
	var table = NewAdapterTable()
	for i, item := range items {
		kit, key := item["LibraryPrepKit"], item["Key"]
		if kit == "" && key == "" {
			continue
		}
		if kit == "" || key == "" {
			return nil, fmt.Errorf("%w: %q row %d", ErrMalformedAdapterTable, path, i+2)
		}
		table.Add(kit, key, item["Value"])
	}
	return table, nil
}

