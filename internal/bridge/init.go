package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
)

// ErrMalformedInit is returned when a window description does not have the
// expected shape.
var ErrMalformedInit = errors.New("malformed window init")

type initJSON struct {
	Title         *string         `json:"title"`
	Icon          *string         `json:"icon"`
	Dock          json.RawMessage `json:"dock"`
	RequestCenter *bool           `json:"requestCenter"`
	Width         int             `json:"width"`
	Height        int             `json:"height"`
}

// ParseInit decodes a window description of the form
//
//	{"title": "...", "icon": "...", "dock": 1, "requestCenter": true}
//
// Only dock is required. It is either an index 0..4 or a dock name.
func ParseInit(data []byte) (dock.Init, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw initJSON
	if err := dec.Decode(&raw); err != nil {
		return dock.Init{}, fmt.Errorf("%w: %v", ErrMalformedInit, err)
	}
	if dec.More() {
		return dock.Init{}, fmt.Errorf("%w: trailing data", ErrMalformedInit)
	}
	if len(raw.Dock) == 0 || string(raw.Dock) == "null" {
		return dock.Init{}, fmt.Errorf("%w: missing dock", ErrMalformedInit)
	}

	d, err := parseDock(raw.Dock)
	if err != nil {
		return dock.Init{}, fmt.Errorf("%w: %v", ErrMalformedInit, err)
	}

	init := dock.Init{Dock: d, Width: raw.Width, Height: raw.Height}
	if raw.Title != nil {
		init.Title = *raw.Title
	}
	if raw.Icon != nil {
		init.Icon = *raw.Icon
	}
	if raw.RequestCenter != nil {
		init.RequestCenter = *raw.RequestCenter
	}
	return init, nil
}

func parseDock(raw json.RawMessage) (dock.Dock, error) {
	var idx int
	if err := json.Unmarshal(raw, &idx); err == nil {
		return dock.FromIndex(idx)
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return dock.None, fmt.Errorf("dock must be an index or a name: %s", raw)
	}
	return dock.Parse(name)
}
