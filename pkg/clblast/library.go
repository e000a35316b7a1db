package clblast

import (
	"errors"
	"time"
	"unsafe"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

// Observer is notified after every routine invocation, including those
// rejected before the native call.
type Observer interface {
	ObserveCall(routine string, err error, elapsed time.Duration)
}

// Library is a session over the native CLBlast entry points.
type Library struct {
	api      native.API
	log      *zap.Logger
	observer Observer
}

type Option func(*Library)

// WithNative replaces the cgo binding, typically with clblasttest.API.
func WithNative(api native.API) Option {
	return func(l *Library) { l.api = api }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Library) {
		if log != nil {
			l.log = log
		}
	}
}

func WithObserver(o Observer) Option {
	return func(l *Library) { l.observer = o }
}

// New opens the native library unless WithNative supplies one.
func New(opts ...Option) (*Library, error) {
	l := &Library{log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	if l.api == nil {
		api, err := native.Open()
		if err != nil {
			return nil, err
		}
		l.api = api
	}
	return l, nil
}

// Queue binds routines to an OpenCL command queue owned by the caller.
func (l *Library) Queue(q CommandQueue) *Queue {
	return &Queue{lib: l, handle: q}
}

// ClearCache drops every compiled kernel CLBlast holds.
func (l *Library) ClearCache() error {
	return l.status("ClearCache", func() native.Status { return l.api.ClearCache() })
}

// FillCache compiles every kernel for device ahead of use.
func (l *Library) FillCache(device Device) error {
	if device == nil || device.DeviceID() == nil {
		l.observe("FillCache", ErrNilHandle, 0, nil)
		return ErrNilHandle
	}
	return l.status("FillCache", func() native.Status { return l.api.FillCache(device) })
}

func (l *Library) status(routine string, fn func() native.Status) error {
	start := time.Now()
	code := fn()
	elapsed := time.Since(start)
	var err error
	if terr := Translate(code); terr != nil {
		err = &CallError{Routine: routine, Status: code, Err: terr}
	}
	l.observe(routine, err, elapsed, nil)
	return err
}

func (l *Library) observe(routine string, err error, elapsed time.Duration, dims []zap.Field) {
	if ce := l.log.Check(zap.DebugLevel, "clblast call"); ce != nil {
		fields := append([]zap.Field{zap.String("routine", routine), zap.Duration("elapsed", elapsed)}, dims...)
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		ce.Write(fields...)
	}
	if l.observer != nil {
		l.observer.ObserveCall(routine, err, elapsed)
	}
}

// Queue is a Library bound to one command queue. Routines enqueue work and
// return without waiting for it.
type Queue struct {
	lib    *Library
	handle CommandQueue
}

// Event receives the OpenCL event of an enqueued routine. The caller owns the
// event once Valid reports true and must release it.
type Event struct {
	handle unsafe.Pointer
}

// Handle returns the cl_event, or nil if no routine has filled it.
func (e *Event) Handle() unsafe.Pointer {
	if e == nil {
		return nil
	}
	return e.handle
}

func (e *Event) Valid() bool {
	return e != nil && e.handle != nil
}

// Reset forgets the handle so the Event can be passed to another routine.
// It does not release the underlying cl_event.
func (e *Event) Reset() {
	e.handle = nil
}

// descriptor is the state every routine descriptor shares.
type descriptor struct {
	queue    *Queue
	event    *Event
	consumed bool
}

// run consumes d, validates, then enqueues.
func (d *descriptor) run(routine string, dims []zap.Field, check func() error, enqueue func(api native.API, call native.Call) native.Status) error {
	if d.consumed {
		return ErrConsumed
	}
	d.consumed = true
	q := d.queue
	if q == nil || q.lib == nil {
		return ErrNilHandle
	}
	if q.handle == nil || q.handle.CommandQueue() == nil {
		q.lib.observe(routine, ErrNilHandle, 0, dims)
		return ErrNilHandle
	}
	if err := check(); err != nil {
		q.lib.observe(routine, err, 0, dims)
		return err
	}
	call := native.Call{Queue: q.handle}
	if d.event != nil {
		d.event.handle = nil
		call.Event = &d.event.handle
	}
	start := time.Now()
	code := enqueue(q.lib.api, call)
	elapsed := time.Since(start)
	var err error
	if terr := Translate(code); terr != nil {
		err = &CallError{Routine: routine, Status: code, Err: terr}
	}
	q.lib.observe(routine, err, elapsed, dims)
	return err
}

// IsShape reports whether err was raised by pre-call validation.
func IsShape(err error) bool {
	return errors.Is(err, ErrShape)
}
