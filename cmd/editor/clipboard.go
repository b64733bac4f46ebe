package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/milk9111/leveleditor/levels"
)

const clipboardKind = "leveleditor/entities"

type clipboardDoc struct {
	Kind     string          `json:"kind"`
	Entities []levels.Entity `json:"entities"`
}

var errNotEntities = errors.New("clipboard does not hold level entities")

func encodeEntities(items []levels.Entity) ([]byte, error) {
	return json.Marshal(clipboardDoc{Kind: clipboardKind, Entities: items})
}

func decodeEntities(data []byte) ([]levels.Entity, error) {
	var doc clipboardDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errNotEntities
	}
	if doc.Kind != clipboardKind {
		return nil, errNotEntities
	}
	for i, e := range doc.Entities {
		if e.ID == "" || e.Type == "" {
			return nil, fmt.Errorf("entity %d: missing id or type", i)
		}
	}
	return doc.Entities, nil
}

// osClipboard shares copied entities with other editor windows. When the
// platform has no clipboard it stays disabled and the editor keeps using its
// in-process clipboard only.
type osClipboard struct {
	once    sync.Once
	enabled bool
}

func (c *osClipboard) init() bool {
	c.once.Do(func() {
		c.enabled = clipboard.Init() == nil
	})
	return c.enabled
}

func (c *osClipboard) Write(items []levels.Entity) error {
	if !c.init() {
		return nil
	}
	data, err := encodeEntities(items)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// Read returns entities placed on the system clipboard, or ok=false when it
// holds something else.
func (c *osClipboard) Read() (items []levels.Entity, ok bool) {
	if !c.init() {
		return nil, false
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, false
	}
	items, err := decodeEntities(data)
	if err != nil {
		return nil, false
	}
	return items, true
}
