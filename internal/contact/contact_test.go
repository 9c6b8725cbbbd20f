package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type submission struct {
	accept      string
	contentType string
	name        string
	email       string
	message     string
}

// newRelay starts an in-process stand-in for the form relay that answers
// with status and records what it received.
func newRelay(t *testing.T, status int) (*httptest.Server, chan submission) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	got := make(chan submission, 1)

	r := gin.New()
	r.POST("/f/:form", func(c *gin.Context) {
		got <- submission{
			accept:      c.GetHeader("Accept"),
			contentType: c.ContentType(),
			name:        c.PostForm("name"),
			email:       c.PostForm("email"),
			message:     c.PostForm("message"),
		}
		if status >= 400 {
			c.JSON(status, gin.H{"error": "rejected"})
			return
		}
		c.JSON(status, gin.H{"ok": true, "next": "/thanks"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, got
}

func TestSubmitPostsForm(t *testing.T) {
	srv, got := newRelay(t, http.StatusOK)
	c := NewClient(srv.URL + "/f/xldwkrda")

	values := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello there"}}
	if err := c.Submit(context.Background(), values); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := <-got
	if s.accept != "application/json" {
		t.Fatalf("expected JSON accept header, got %q", s.accept)
	}
	if s.contentType != "application/x-www-form-urlencoded" {
		t.Fatalf("expected form encoding, got %q", s.contentType)
	}
	if s.name != "Ada" || s.email != "ada@example.com" || s.message != "Hello there" {
		t.Fatalf("unexpected fields %+v", s)
	}
}

func TestSubmitRejected(t *testing.T) {
	srv, _ := newRelay(t, http.StatusUnprocessableEntity)
	c := NewClient(srv.URL + "/f/xldwkrda")

	err := c.Submit(context.Background(), url.Values{"email": {"nope"}})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestSubmitTransportError(t *testing.T) {
	srv, _ := newRelay(t, http.StatusOK)
	endpoint := srv.URL + "/f/xldwkrda"
	srv.Close()

	err := NewClient(endpoint).Submit(context.Background(), url.Values{})
	if err == nil || errors.Is(err, ErrRejected) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestSubmitAsync(t *testing.T) {
	srv, _ := newRelay(t, http.StatusOK)
	c := NewClient(srv.URL + "/f/xldwkrda")

	select {
	case err := <-c.SubmitAsync(context.Background(), url.Values{"name": {"Ada"}}):
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for submission")
	}
}

func TestFormFloatingLabels(t *testing.T) {
	f := NewForm(map[string]string{"email": "ada@example.com"})
	if !f.Fields[1].Focused() || f.Fields[0].Focused() {
		t.Fatal("expected only the prefilled field to start focused")
	}

	f.Focus(0)
	if !f.Fields[0].Focused() || !f.Fields[0].Active() {
		t.Fatal("expected focus to raise the label")
	}
	f.Next()
	if f.Current() != 1 || f.Fields[0].Focused() {
		t.Fatal("expected empty field to drop its label on blur")
	}

	f.Focus(3)
	f.Type([]rune("Hi"))
	f.Blur()
	if !f.Fields[3].Focused() {
		t.Fatal("expected filled field to keep its label on blur")
	}
	if f.Current() != -1 {
		t.Fatalf("expected no focus, got %d", f.Current())
	}
}

func TestFormTyping(t *testing.T) {
	f := NewForm(nil)
	f.Type([]rune("ignored"))
	f.Focus(0)
	f.Type([]rune("Adé"))
	f.Backspace()
	f.Type([]rune("a "))
	if got := f.Values().Get("name"); got != "Ada" {
		t.Fatalf("expected trimmed value Ada, got %q", got)
	}
	if f.Fields[1].Value != "" {
		t.Fatal("expected typing without focus to be ignored")
	}
}

func TestFormSubmitSuccessResets(t *testing.T) {
	f := NewForm(map[string]string{"name": "Ada", "message": "Hello"})
	if !f.BeginSubmit() || f.State() != Sending || f.Enabled() {
		t.Fatal("expected sending state with the button disabled")
	}
	if f.BeginSubmit() {
		t.Fatal("expected a second submit to be refused while sending")
	}
	if f.State().Label() != LabelSending {
		t.Fatalf("unexpected label %q", f.State().Label())
	}

	f.Finish(nil)
	if f.State() != Sent || f.State().Label() != LabelSent {
		t.Fatalf("expected sent, got %v", f.State())
	}
	f.Update(2999 * time.Millisecond)
	if f.State() != Sent {
		t.Fatal("expected result shown for 3s")
	}
	f.Update(time.Millisecond)
	if f.State() != Idle || !f.Enabled() {
		t.Fatal("expected idle after 3s")
	}
	for _, fd := range f.Fields {
		if fd.Value != "" || fd.Focused() {
			t.Fatalf("expected %s cleared, got %q", fd.Name, fd.Value)
		}
	}
}

func TestFormSubmitFailureKeepsValues(t *testing.T) {
	f := NewForm(map[string]string{"name": "Ada"})
	f.BeginSubmit()
	f.Finish(ErrRejected)
	if f.State() != Failed || f.State().Label() != LabelFailed {
		t.Fatalf("expected failed, got %v", f.State())
	}
	f.Update(3 * time.Second)
	if f.State() != Idle {
		t.Fatal("expected idle after 3s")
	}
	if f.Fields[0].Value != "Ada" {
		t.Fatal("expected values kept after a failure")
	}
}

func TestFinishIgnoredWhenNotSending(t *testing.T) {
	f := NewForm(nil)
	f.Finish(nil)
	if f.State() != Idle {
		t.Fatalf("expected idle, got %v", f.State())
	}
}

func TestFormMissing(t *testing.T) {
	f := NewForm(nil)
	if f.Missing() != 0 {
		t.Fatalf("expected name missing, got %d", f.Missing())
	}
	f.Fields[0].Value = "Ada"
	f.Fields[1].Value = "ada"
	if f.Missing() != 1 {
		t.Fatalf("expected malformed email, got %d", f.Missing())
	}
	f.Fields[1].Value = "ada@example.com"
	if f.Missing() != 3 {
		t.Fatalf("expected message missing, got %d", f.Missing())
	}
	f.Fields[3].Value = "Hi"
	if f.Missing() != -1 {
		t.Fatalf("expected a sendable form, got %d", f.Missing())
	}
}
