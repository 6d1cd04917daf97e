package wizard

// Status is the wizard lifecycle phase.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// State is the controller-owned view of a wizard session. It is created at
// idle on step zero with no entity id, mutated only by the controller's
// transition methods, and terminal at success.
type State struct {
	CurrentStep int               `json:"currentStep"`
	Status      Status            `json:"status"`
	EntityID    string            `json:"entityId,omitempty"`
	Errors      []string          `json:"errors,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func initialState() State {
	return State{CurrentStep: 0, Status: StatusIdle}
}

func (s State) clone() State {
	out := s
	if len(s.Errors) > 0 {
		out.Errors = append([]string(nil), s.Errors...)
	}
	if len(s.FieldErrors) > 0 {
		out.FieldErrors = make(map[string]string, len(s.FieldErrors))
		for field, message := range s.FieldErrors {
			out.FieldErrors[field] = message
		}
	}
	return out
}
