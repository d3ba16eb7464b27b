package forms

import "sync"

type DialogMode string

const (
	DialogAdd    DialogMode = "add"
	DialogEdit   DialogMode = "edit"
	DialogDelete DialogMode = "delete"
	DialogStock  DialogMode = "stock"
	DialogDetail DialogMode = "detail"
)

// Dialog tracks which dialog a feature screen has open and which row
// it targets. After Close the selection stays active until AckClosed,
// the close-completion signal, so a dialog that is still closing can
// keep rendering its target. Nothing here touches the canonical
// collection.
type Dialog[T any] struct {
	mu        sync.Mutex
	mode      DialogMode
	open      bool
	selection *T
}

// Open opens a dialog against target. Reopening against a new target
// replaces the previous selection; create-mode dialogs carry no
// selection.
func (d *Dialog[T]) Open(mode DialogMode, target *T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
	d.open = true
	d.selection = target
}

// Close marks the dialog closed. The selection is kept until the
// close-completion signal.
func (d *Dialog[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
}

// AckClosed clears the selection once closing has completed. It is a
// no-op while the dialog is open.
func (d *Dialog[T]) AckClosed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		return
	}
	d.selection = nil
	d.mode = ""
}

func (d *Dialog[T]) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

func (d *Dialog[T]) Mode() DialogMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// Selection returns the targeted row and whether a selection is still
// active.
func (d *Dialog[T]) Selection() (*T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection, d.selection != nil
}
