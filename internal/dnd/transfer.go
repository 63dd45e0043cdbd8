// Package dnd implements window docking by drag and drop: a taskbar item
// is dragged carrying the window id under an application payload type,
// and dock zones accept only drags that carry that type.
package dnd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
)

// PayloadType marks drags that carry a window id. Zones ignore drags
// without it.
const PayloadType = "application/x-dockwm-window"

// ErrNoPayload is returned by ParsePayload when the transfer carries no
// window id.
var ErrNoPayload = errors.New("no window payload")

// DataTransfer is the data carried by a drag, keyed by type.
type DataTransfer struct {
	types []string
	data  map[string]string
}

// NewDataTransfer returns an empty transfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: make(map[string]string)}
}

// SetData stores value under typ, replacing any earlier value.
func (dt *DataTransfer) SetData(typ, value string) {
	if _, ok := dt.data[typ]; !ok {
		dt.types = append(dt.types, typ)
	}
	dt.data[typ] = value
}

// GetData returns the value stored under typ.
func (dt *DataTransfer) GetData(typ string) (string, bool) {
	if dt == nil {
		return "", false
	}
	v, ok := dt.data[typ]
	return v, ok
}

// Types lists the stored types in insertion order.
func (dt *DataTransfer) Types() []string {
	if dt == nil {
		return nil
	}
	return slices.Clone(dt.types)
}

// HasType reports whether a value is stored under typ.
func (dt *DataTransfer) HasType(typ string) bool {
	if dt == nil {
		return false
	}
	_, ok := dt.data[typ]
	return ok
}

// Start puts the window id on the transfer as the drag payload.
func Start(dt *DataTransfer, id dock.ID) {
	dt.SetData(PayloadType, id.String())
}

// ParsePayload extracts the window id carried by the transfer.
func ParsePayload(dt *DataTransfer) (dock.ID, error) {
	raw, ok := dt.GetData(PayloadType)
	if !ok {
		return 0, ErrNoPayload
	}
	id, err := dock.ParseID(raw)
	if err != nil {
		return 0, fmt.Errorf("payload %q: %w", raw, err)
	}
	return id, nil
}
