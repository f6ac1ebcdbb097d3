package validate

import "strings"

// Context gives rules access to the message under validation.
type Context struct {
	// Message is the raw commit message.
	Message string

	firstLine *string
}

// NewContext creates a Context for message.
func NewContext(message string) *Context {
	return &Context{Message: message}
}

// FirstLine returns the message up to the first newline.
func (c *Context) FirstLine() string {
	if c.firstLine == nil {
		line := c.Message
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		c.firstLine = &line
	}
	return *c.firstLine
}

// CategoryField returns the text before the first "-" anywhere in the message,
// or the whole message when it has none.
func (c *Context) CategoryField() string {
	if i := strings.Index(c.Message, "-"); i >= 0 {
		return c.Message[:i]
	}
	return c.Message
}

// SequenceField returns the text between the first "-" and the first ":"
// after it. Without a "-" it is empty; without a ":" it runs to the end.
func (c *Context) SequenceField() string {
	i := strings.Index(c.Message, "-")
	if i < 0 {
		return ""
	}
	rest := c.Message[i+1:]
	if j := strings.Index(rest, ":"); j >= 0 {
		return rest[:j]
	}
	return rest
}
