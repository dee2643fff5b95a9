// Package modal carries transient UI signals between the domain services
// and the presentation layer. Confirm, error and success requests share one
// center keyed by variant; at most one request per variant is pending and
// setting a new one overwrites any unconsumed prior request.
package modal

import "sync"

// Variant selects which of the three modal slots a request occupies.
type Variant string

const (
	VariantConfirm Variant = "confirm"
	VariantError   Variant = "error"
	VariantSuccess Variant = "success"
)

func (v Variant) Valid() bool {
	return v == VariantConfirm || v == VariantError || v == VariantSuccess
}

// Request describes one pending modal: its text, button labels and the
// callbacks to run when the user resolves it. Callbacks are optional.
type Request struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title,omitempty"`
	Message     string  `json:"message"`
	AcceptLabel string  `json:"acceptLabel,omitempty"`
	CancelLabel string  `json:"cancelLabel,omitempty"`
	CloseLabel  string  `json:"closeLabel,omitempty"`

	OnAccept func() `json:"-"`
	OnCancel func() `json:"-"`
	OnClose  func() `json:"-"`
}

// Center holds the pending request of each variant.
type Center struct {
	mu      sync.Mutex
	pending map[Variant]*Request
}

// NewCenter creates an empty modal center.
func NewCenter() *Center {
	return &Center{pending: make(map[Variant]*Request)}
}

// Show makes req the pending request of its variant, replacing any
// unconsumed prior request without running its callbacks.
func (c *Center) Show(req Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := req
	c.pending[req.Variant] = &r
}

// ShowError raises the error modal with the fixed close label.
func (c *Center) ShowError(title, message string) {
	c.Show(Request{
		Variant:    VariantError,
		Title:      title,
		Message:    message,
		CloseLabel: "Cerrar",
	})
}

// ShowSuccess raises the success modal with the fixed accept label.
func (c *Center) ShowSuccess(message string) {
	c.Show(Request{
		Variant:    VariantSuccess,
		Message:    message,
		CloseLabel: "Aceptar",
	})
}

// ShowConfirm raises the confirm modal. onAccept runs when the user accepts.
func (c *Center) ShowConfirm(message string, onAccept func()) {
	c.Show(Request{
		Variant:     VariantConfirm,
		Message:     message,
		AcceptLabel: "Eliminar",
		CancelLabel: "Cancelar",
		OnAccept:    onAccept,
	})
}

// Pending returns the pending request of the variant, if any.
func (c *Center) Pending(v Variant) (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.pending[v]
	if !ok {
		return Request{}, false
	}
	return *r, true
}

// Snapshot returns a copy of every pending request, keyed by variant.
func (c *Center) Snapshot() map[Variant]Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Variant]Request, len(c.pending))
	for v, r := range c.pending {
		out[v] = *r
	}
	return out
}

// Close dismisses the pending request of the variant, running its OnClose
// callback first. It reports whether a request was pending.
func (c *Center) Close(v Variant) bool {
	return c.resolve(v, func(r *Request) func() { return r.OnClose })
}

// Accept resolves the pending confirm request positively, running OnAccept.
func (c *Center) Accept() bool {
	return c.resolve(VariantConfirm, func(r *Request) func() { return r.OnAccept })
}

// Cancel resolves the pending confirm request negatively, running OnCancel.
func (c *Center) Cancel() bool {
	return c.resolve(VariantConfirm, func(r *Request) func() { return r.OnCancel })
}

func (c *Center) resolve(v Variant, pick func(*Request) func()) bool {
	c.mu.Lock()
	r, ok := c.pending[v]
	if ok {
		delete(c.pending, v)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	// Run the callback outside the lock; it may raise further modals.
	if cb := pick(r); cb != nil {
		cb()
	}
	return true
}
