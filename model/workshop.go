package model

// Workshop is a capacity-limited session owned by exactly one exhibition.
// Its title doubles as the catalog-wide lookup key.
type Workshop struct {
	Title               string   `json:"title" bson:"title"`
	Schedule            string   `json:"schedule" bson:"schedule"`
	MaxCapacity         int      `json:"max_capacity" bson:"max_capacity"`
	RegisteredAttendees []string `json:"registered_attendees" bson:"registered_attendees"`
}

func NewWorkshop(title, schedule string, maxCapacity int) *Workshop {
	return &Workshop{
		Title:               title,
		Schedule:            schedule,
		MaxCapacity:         maxCapacity,
		RegisteredAttendees: []string{},
	}
}

// Register adds an attendee email to the workshop. It returns false without
// mutating anything when the workshop is full or the email is already present.
func (w *Workshop) Register(email string) bool {
	if len(w.RegisteredAttendees) >= w.MaxCapacity {
		return false
	}
	for _, registered := range w.RegisteredAttendees {
		if registered == email {
			return false
		}
	}
	w.RegisteredAttendees = append(w.RegisteredAttendees, email)
	return true
}

// Unregister removes an attendee email and reports whether it was present.
func (w *Workshop) Unregister(email string) bool {
	for i, registered := range w.RegisteredAttendees {
		if registered == email {
			w.RegisteredAttendees = append(w.RegisteredAttendees[:i], w.RegisteredAttendees[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Workshop) AvailableSpots() int {
	return w.MaxCapacity - len(w.RegisteredAttendees)
}

func (w *Workshop) IsFull() bool {
	return len(w.RegisteredAttendees) >= w.MaxCapacity
}
