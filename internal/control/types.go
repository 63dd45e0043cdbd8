package control

// NewWindowInput is the input for the new_window tool.
type NewWindowInput struct {
	Title         string `json:"title,omitempty" jsonschema:"Window title shown in the taskbar"`
	Icon          string `json:"icon,omitempty" jsonschema:"Short icon text shown before the title"`
	Dock          string `json:"dock,omitempty" jsonschema:"Dock the window opens in when first shown: top, left, bottom, right or center (default: the configured default dock)"`
	RequestCenter bool   `json:"request_center,omitempty" jsonschema:"When true, show the window in the center dock right away"`
}

// NewWindowOutput is the output for the new_window tool.
type NewWindowOutput struct {
	ID     uint64 `json:"id"`
	Handle string `json:"handle"`
}

// WindowInput names a window.
type WindowInput struct {
	ID uint64 `json:"id" jsonschema:"Window id returned by new_window"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID   uint64 `json:"id" jsonschema:"Window id"`
	Dock string `json:"dock" jsonschema:"Target dock: top, left, bottom, right or center"`
}

// ResizeDockInput is the input for the resize_dock tool.
type ResizeDockInput struct {
	Dock string `json:"dock" jsonschema:"Edge dock to resize: top, left, bottom or right"`
	DX   int    `json:"dx,omitempty" jsonschema:"Horizontal pointer delta in cells"`
	DY   int    `json:"dy,omitempty" jsonschema:"Vertical pointer delta in cells"`
}

// OpenSelectorInput is the input for the open_selector tool.
type OpenSelectorInput struct {
	ID uint64 `json:"id" jsonschema:"Window the selector places"`
	X  int    `json:"x" jsonschema:"Screen column of the selector"`
	Y  int    `json:"y" jsonschema:"Screen row of the selector"`
}

// ResizeWindowInput is the input for the resize_window tool.
type ResizeWindowInput struct {
	ID     uint64 `json:"id" jsonschema:"Window id"`
	Anchor string `json:"anchor" jsonschema:"Grabbed anchor: title, n, s, w, e, nw, ne, sw or se"`
	DX     int    `json:"dx,omitempty" jsonschema:"Horizontal delta in cells"`
	DY     int    `json:"dy,omitempty" jsonschema:"Vertical delta in cells"`
}

// EmptyInput is the input of tools without arguments.
type EmptyInput struct{}

// DoneOutput is the output of commands that only succeed or fail.
type DoneOutput struct {
	OK bool `json:"ok"`
}

// GetWindowOutput is the output for the get_window tool.
type GetWindowOutput struct {
	Handle string `json:"handle"`
}

// WindowInfo describes one window in a layout snapshot.
type WindowInfo struct {
	ID     uint64 `json:"id"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	Handle string `json:"handle"`
	Open   bool   `json:"open"`
	Dock   string `json:"dock"`
}

// DockInfo describes one edge dock in a layout snapshot.
type DockInfo struct {
	Dock     string   `json:"dock"`
	Occupied bool     `json:"occupied"`
	Size     int      `json:"size"`
	Stack    []uint64 `json:"stack"`
}

// LayoutOutput is the output for the get_layout tool.
type LayoutOutput struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Docks   []DockInfo   `json:"docks"`
	Center  *uint64      `json:"center,omitempty"`
	Windows []WindowInfo `json:"windows"`
}
