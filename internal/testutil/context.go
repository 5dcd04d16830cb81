package testutil

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NewTestLogger returns a logger that discards everything
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FakeContext is a minimal tele.Context for handler tests. It records
// outgoing sends and edits; unimplemented methods panic via the
// embedded nil interface, which keeps tests honest about what they
// exercise.
type FakeContext struct {
	tele.Context

	User         *tele.User
	MessageText  string
	CallbackData string

	Sent      []string
	Edited    []string
	Responses []*tele.CallbackResponse
	Deleted   bool

	// SendErr forces Send to fail, for delivery failure paths
	SendErr error
}

// NewFakeContext builds a context for a plain text message
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:        &tele.User{ID: userID},
		MessageText: text,
	}
}

// NewFakeCallback builds a context for a callback query
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		User:         &tele.User{ID: userID},
		CallbackData: data,
	}
}

func (c *FakeContext) Sender() *tele.User { return c.User }

func (c *FakeContext) Chat() *tele.Chat {
	if c.User == nil {
		return nil
	}
	return &tele.Chat{ID: c.User.ID}
}

func (c *FakeContext) Text() string { return c.MessageText }

func (c *FakeContext) Message() *tele.Message {
	return &tele.Message{Text: c.MessageText, Sender: c.User}
}

func (c *FakeContext) Callback() *tele.Callback {
	if c.CallbackData == "" {
		return nil
	}
	return &tele.Callback{Sender: c.User, Data: c.CallbackData}
}

func (c *FakeContext) Data() string { return c.CallbackData }

func (c *FakeContext) Args() []string {
	fields := strings.Fields(c.MessageText)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	if c.SendErr != nil {
		return c.SendErr
	}
	c.Sent = append(c.Sent, render(what))
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.Edited = append(c.Edited, render(what))
	return nil
}

func (c *FakeContext) EditOrSend(what interface{}, opts ...interface{}) error {
	return c.Edit(what, opts...)
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, &tele.CallbackResponse{})
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

func (c *FakeContext) Delete() error {
	c.Deleted = true
	return nil
}

// LastSent returns the most recent outgoing text, counting edits
func (c *FakeContext) LastSent() string {
	if n := len(c.Edited); n > 0 && len(c.Sent) == 0 {
		return c.Edited[n-1]
	}
	if n := len(c.Sent); n > 0 {
		return c.Sent[n-1]
	}
	return ""
}

func render(what interface{}) string {
	switch v := what.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
