package contact

import (
	"net/url"
	"strings"
	"time"
)

// Messages shown after a submission.
const (
	SentMessage   = "Message sent successfully! I'll get back to you soon."
	FailedMessage = "Failed to send message. Please try again or contact me directly."
)

// Button labels for each submit state.
const (
	LabelIdle    = "Send Message"
	LabelSending = "Sending..."
	LabelSent    = "Message Sent Successfully!"
	LabelFailed  = "Failed to Send"
)

const resetAfter = 3 * time.Second

// required lists the fields the form refuses to send without.
var required = map[string]bool{"name": true, "email": true, "message": true}

// Field is one input with a floating label.
type Field struct {
	Name  string
	Label string
	Value string

	focused bool
	active  bool
}

// Focused reports whether the label floats above the input.
func (f *Field) Focused() bool { return f.focused }

// Active reports whether the field has input focus.
func (f *Field) Active() bool { return f.active }

// ButtonState is the submit button's state.
type ButtonState int

const (
	Idle ButtonState = iota
	Sending
	Sent
	Failed
)

func (s ButtonState) Label() string {
	switch s {
	case Sending:
		return LabelSending
	case Sent:
		return LabelSent
	case Failed:
		return LabelFailed
	}
	return LabelIdle
}

// Form holds the inputs, the focused field and the submit button state.
type Form struct {
	Fields []*Field

	current int
	state   ButtonState
	since   time.Duration
}

// NewForm builds the name/email/subject/message form. Prefilled values
// start with a floating label.
func NewForm(prefill map[string]string) *Form {
	f := &Form{
		current: -1,
		Fields: []*Field{
			{Name: "name", Label: "Your Name"},
			{Name: "email", Label: "Your Email"},
			{Name: "subject", Label: "Subject"},
			{Name: "message", Label: "Your Message"},
		},
	}
	for _, fd := range f.Fields {
		fd.Value = prefill[fd.Name]
		fd.focused = fd.Value != ""
	}
	return f
}

// Focus moves input focus to field i, blurring the previous one.
func (f *Form) Focus(i int) {
	if i == f.current {
		return
	}
	f.Blur()
	if i < 0 || i >= len(f.Fields) {
		return
	}
	f.current = i
	f.Fields[i].active = true
	f.Fields[i].focused = true
}

// Blur drops focus; the label stays up when the field has a value.
func (f *Form) Blur() {
	if f.current < 0 {
		return
	}
	fd := f.Fields[f.current]
	fd.active = false
	if fd.Value == "" {
		fd.focused = false
	}
	f.current = -1
}

// Next cycles focus to the following field.
func (f *Form) Next() { f.Focus((f.current + 1) % len(f.Fields)) }

// Current is the focused field index, -1 when none.
func (f *Form) Current() int { return f.current }

// Type appends runes to the focused field.
func (f *Form) Type(runes []rune) {
	if f.current < 0 || !f.Enabled() {
		return
	}
	f.Fields[f.current].Value += string(runes)
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	if f.current < 0 || !f.Enabled() {
		return
	}
	fd := f.Fields[f.current]
	r := []rune(fd.Value)
	if len(r) > 0 {
		fd.Value = string(r[:len(r)-1])
	}
}

// Values returns the form data as sent to the relay.
func (f *Form) Values() url.Values {
	v := url.Values{}
	for _, fd := range f.Fields {
		v.Set(fd.Name, strings.TrimSpace(fd.Value))
	}
	return v
}

// Missing returns the index of the first required field that is empty or,
// for the email field, lacks an @. It returns -1 when the form can be sent.
func (f *Form) Missing() int {
	for i, fd := range f.Fields {
		v := strings.TrimSpace(fd.Value)
		if required[fd.Name] && v == "" {
			return i
		}
		if fd.Name == "email" && v != "" && !strings.Contains(v, "@") {
			return i
		}
	}
	return -1
}

func (f *Form) State() ButtonState { return f.state }

// Enabled reports whether the submit button (and typing) is enabled.
func (f *Form) Enabled() bool { return f.state == Idle }

// BeginSubmit disables the button. It returns false if a submission or its
// result is still showing.
func (f *Form) BeginSubmit() bool {
	if f.state != Idle {
		return false
	}
	f.state = Sending
	f.since = 0
	return true
}

// Finish records the outcome of the submission.
func (f *Form) Finish(err error) {
	if f.state != Sending {
		return
	}
	f.since = 0
	if err != nil {
		f.state = Failed
		return
	}
	f.state = Sent
}

// Update returns the button to idle 3s after a result; after a success the
// inputs are cleared and their labels dropped.
func (f *Form) Update(dt time.Duration) {
	if f.state != Sent && f.state != Failed {
		return
	}
	f.since += dt
	if f.since < resetAfter {
		return
	}
	if f.state == Sent {
		f.reset()
	}
	f.state = Idle
	f.since = 0
}

func (f *Form) reset() {
	f.Blur()
	for _, fd := range f.Fields {
		fd.Value = ""
		fd.focused = false
	}
}
