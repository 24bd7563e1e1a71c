package table

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/dmg.v1.json
var defaultTableJSON []byte

var (
	loadDefaultOnce sync.Once
	defaultTable    Table
)

// Default returns the embedded Dungeon Master's Guide thresholds.
//
// The embedded document is decoded once; each call returns a fresh copy so
// callers cannot mutate cached package state.
func Default() Table {
	loadDefaultOnce.Do(func() {
		defaultTable = mustDecode(defaultTableJSON, FormatJSON)
	})
	return defaultTable.clone()
}

// DefaultJSON returns a copy of the embedded table document.
func DefaultJSON() []byte {
	return append([]byte(nil), defaultTableJSON...)
}

func mustDecode(raw []byte, format Format) Table {
	t, err := Decode(raw, format)
	if err != nil {
		panic(fmt.Sprintf("decode embedded encounter table: %v", err))
	}
	return t
}
