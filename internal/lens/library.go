package lens

import (
	"fmt"
	"strconv"
	"strings"
)

// BoxCount is the number of boxes addressed by Hash.
const BoxCount = 256

// Op is the operation a step performs on its box.
type Op byte

const (
	// Insert places or replaces a lens.
	Insert Op = '='
	// Remove takes a lens out of its box.
	Remove Op = '-'
)

// Step is one parsed HASHMAP instruction.
type Step struct {
	Label string
	Op    Op
	// Focal is the focal length for Insert and zero for Remove.
	Focal int
}

// Box returns the index of the box the step operates on.
func (s Step) Box() int { return Hash(s.Label) }

func (s Step) String() string {
	if s.Op == Remove {
		return s.Label + "-"
	}
	return s.Label + "=" + strconv.Itoa(s.Focal)
}

// StepError reports a step that is neither "label=N" nor "label-".
type StepError struct {
	Step   string
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("lens: step %q: %s", e.Step, e.Reason)
}

// ParseStep decodes "label=N" or "label-".
func ParseStep(s string) (Step, error) {
	if label, ok := strings.CutSuffix(s, "-"); ok {
		if label == "" {
			return Step{}, &StepError{Step: s, Reason: "missing label"}
		}
		return Step{Label: label, Op: Remove}, nil
	}
	label, focal, ok := strings.Cut(s, "=")
	if !ok {
		return Step{}, &StepError{Step: s, Reason: "missing '=' or '-'"}
	}
	if label == "" {
		return Step{}, &StepError{Step: s, Reason: "missing label"}
	}
	n, err := strconv.Atoi(focal)
	if err != nil || n <= 0 {
		return Step{}, &StepError{Step: s, Reason: "focal length must be a positive integer"}
	}
	return Step{Label: label, Op: Insert, Focal: n}, nil
}

// Lens is a labeled lens in a box slot.
type Lens struct {
	Label string
	Focal int
}

// Library holds the boxes. The zero value is empty and ready to use.
type Library struct {
	boxes [BoxCount][]Lens
}

// Apply performs one step.
func (l *Library) Apply(s Step) {
	box := &l.boxes[s.Box()]
	i := indexOf(*box, s.Label)
	switch s.Op {
	case Remove:
		if i >= 0 {
			*box = append((*box)[:i], (*box)[i+1:]...)
		}
	case Insert:
		if i >= 0 {
			(*box)[i].Focal = s.Focal
			return
		}
		*box = append(*box, Lens{Label: s.Label, Focal: s.Focal})
	}
}

// Box returns the lenses in box i, front to back. The slice must not be
// modified.
func (l *Library) Box(i int) []Lens { return l.boxes[i] }

// FocusingPower sums (box+1) * (slot+1) * focal over every lens.
func (l *Library) FocusingPower() int {
	total := 0
	for b, box := range l.boxes {
		for slot, lens := range box {
			total += (b + 1) * (slot + 1) * lens.Focal
		}
	}
	return total
}

func indexOf(box []Lens, label string) int {
	for i, lens := range box {
		if lens.Label == label {
			return i
		}
	}
	return -1
}
