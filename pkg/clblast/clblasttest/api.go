package clblasttest

import (
	"sync"
	"unsafe"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"gonum.org/v1/gonum/blas/gonum"
)

var _ native.API = (*API)(nil)

// API records every native call and executes it synchronously on host
// buffers. It validates arguments the way CLBlast does and reports the same
// status codes, so shape checks in the caller can be told apart from checks
// in the library.
type API struct {
	mu     sync.Mutex
	calls  map[string]int
	fail   map[string]native.Status
	events []*event
	impl   gonum.Implementation
}

type event struct {
	routine string
}

func New() *API {
	return &API{calls: make(map[string]int), fail: make(map[string]native.Status)}
}

// Fail makes every later call to routine return status without executing.
func (a *API) Fail(routine string, status native.Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fail[routine] = status
}

// Calls returns how often routine was entered.
func (a *API) Calls(routine string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[routine]
}

// Total returns the number of native calls across all routines.
func (a *API) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	total := 0
	for _, n := range a.calls {
		total += n
	}
	return total
}

// Events returns how many events were handed out.
func (a *API) Events() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.events)
}

// EventRoutine returns the routine that produced the event handle h.
func EventRoutine(h unsafe.Pointer) string {
	if h == nil {
		return ""
	}
	return (*event)(h).routine
}

func (a *API) exec(routine string, call native.Call, fn func() native.Status) native.Status {
	a.mu.Lock()
	a.calls[routine]++
	status, failing := a.fail[routine]
	a.mu.Unlock()
	if failing {
		return status
	}
	if call.Queue == nil || call.Queue.CommandQueue() == nil {
		return native.InvalidCommandQueue
	}
	if status := fn(); status != native.Success {
		return status
	}
	if call.Event != nil {
		ev := &event{routine: routine}
		a.mu.Lock()
		a.events = append(a.events, ev)
		a.mu.Unlock()
		*call.Event = unsafe.Pointer(ev)
	}
	return native.Success
}

func (a *API) ClearCache() native.Status {
	return a.exec("ClearCache", native.Call{Queue: &Queue{}}, func() native.Status { return native.Success })
}

func (a *API) FillCache(device native.Device) native.Status {
	return a.exec("FillCache", native.Call{Queue: &Queue{}}, func() native.Status {
		if device == nil || device.DeviceID() == nil {
			return native.InvalidValue
		}
		return native.Success
	})
}
