package slider

// Event types dispatched by the Store. "before" events fire synchronously
// inside the mutating call; the others are delivered on the dispatch
// goroutine after the mutation has been applied.
const (
	EventBeforeSlideChange = "beforeSlideChange"
	EventSlideChange       = "slideChange"
	EventSettingsChange    = "settingsChange"
	EventSlidesLoaded      = "slidesLoaded"
	EventSlideUpdate       = "slideUpdate"
)

// Event is a typed notification with an opaque payload.
type Event struct {
	Type    string
	Payload map[string]any
}

// Listener receives events of the type it was registered for.
type Listener func(Event)

// AddEventListener registers fn for the event type and returns its
// unregister function.
func (s *Store) AddEventListener(eventType string, fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners[eventType] == nil {
		s.listeners[eventType] = make(map[int]Listener)
	}
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[eventType][id] = fn
	return func() {
		s.RemoveEventListener(eventType, id)
	}
}

// RemoveEventListener drops the listener registered under id.
func (s *Store) RemoveEventListener(eventType string, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners[eventType], id)
}

// DispatchEvent delivers a caller-defined event synchronously.
func (s *Store) DispatchEvent(eventType string, payload map[string]any) {
	s.dispatchSync(Event{Type: eventType, Payload: payload})
}

// dispatchSync calls every listener for the event, recovering per listener
// so one failing observer cannot starve the rest.
func (s *Store) dispatchSync(ev Event) {
	s.mu.Lock()
	fns := make([]Listener, 0, len(s.listeners[ev.Type]))
	for _, fn := range s.listeners[ev.Type] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		s.callListener(fn, ev)
	}
}

func (s *Store) callListener(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event listener panicked", "event", ev.Type, "err", r)
		}
	}()
	fn(ev)
}

// enqueueAfter hands the event to the dispatch goroutine, giving listeners
// a view of the store that includes the mutation that produced it.
func (s *Store) enqueueAfter(ev Event) {
	select {
	case s.afterCh <- ev:
	case <-s.done:
	}
}

func (s *Store) dispatchLoop() {
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.afterCh:
			s.dispatchSync(ev)
		}
	}
}
