package notify

import (
	"log"

	"github.com/kirienkoandrew/HairCut-1/internal/models"
)

// Notifier delivers onboarding notifications. No return value is
// consumed by the core; delivery failures only get logged.
type Notifier interface {
	MasterRegistered(profile *models.MasterProfile, user *models.User) error
}

// LogNotifier writes notifications to the process log. Stands in for
// an SMTP backend in development and test deployments.
type LogNotifier struct{}

func (LogNotifier) MasterRegistered(profile *models.MasterProfile, user *models.User) error {
	log.Printf(
		"notify: new master application from %s %s <%s>, working hours %s-%s",
		user.FirstName, user.LastName, user.Email,
		profile.WorkStart, profile.WorkEnd,
	)
	return nil
}

// Dispatcher delivers notifications off the request path, same
// drop-on-full policy as the audit queue.
type Dispatcher struct {
	notifier Notifier
	queue    chan payload
}

type payload struct {
	profile *models.MasterProfile
	user    *models.User
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan payload, 50),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for p := range d.queue {
		if err := d.notifier.MasterRegistered(p.profile, p.user); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) MasterRegistered(profile *models.MasterProfile, user *models.User) {
	select {
	case d.queue <- payload{profile: profile, user: user}:
	default:
		log.Printf("notify queue full, dropping notification for master %d", profile.ID)
	}
}
