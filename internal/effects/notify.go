package effects

import "time"

type Kind int

const (
	Success Kind = iota
	Failure
)

func (k Kind) String() string {
	if k == Success {
		return "success"
	}
	return "error"
}

// Notification timing: appended off-screen, slides in after 100ms, starts
// sliding out at 5s and is removed 300ms later.
const (
	NotifySlideIn    = 100 * time.Millisecond
	NotifySlideOut   = 5000 * time.Millisecond
	NotifyRemove     = NotifySlideOut + 300*time.Millisecond
	NotifyOffset     = 400.0
	notifyTransition = 300 * time.Millisecond
)

type Notification struct {
	Message string
	Kind    Kind
	Age     time.Duration
}

// Offset is the horizontal displacement from the resting position.
func (n Notification) Offset() float64 {
	switch {
	case n.Age < NotifySlideIn:
		return NotifyOffset
	case n.Age < NotifySlideOut:
		return NotifyOffset * (1 - transition(n.Age-NotifySlideIn, notifyTransition))
	default:
		return NotifyOffset * transition(n.Age-NotifySlideOut, notifyTransition)
	}
}

func (n Notification) Expired() bool { return n.Age >= NotifyRemove }

// Notifier keeps the notifications currently on screen, oldest first.
type Notifier struct {
	items  []Notification
	onShow func(Notification)
}

// NewNotifier calls onShow (may be nil) for every pushed notification.
func NewNotifier(onShow func(Notification)) *Notifier {
	return &Notifier{onShow: onShow}
}

func (n *Notifier) Push(message string, kind Kind) {
	item := Notification{Message: message, Kind: kind}
	n.items = append(n.items, item)
	if n.onShow != nil {
		n.onShow(item)
	}
}

func (n *Notifier) Update(dt time.Duration) {
	kept := n.items[:0]
	for _, it := range n.items {
		it.Age += dt
		if !it.Expired() {
			kept = append(kept, it)
		}
	}
	n.items = kept
}

func (n *Notifier) Items() []Notification { return n.items }
