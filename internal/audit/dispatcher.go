package audit

import "log"

type Event struct {
	MasterID  uint
	UserID    *uint
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.logger == nil {
			continue
		}
		if err := d.logger.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks the request path; when the queue is full the
// event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
