// Package events publishes object lifecycle notifications.
//
// Each tree mutation becomes one JSON message on the subject
//
//	{prefix}.objects.{kind}.{action}
//
// so a subscriber can follow every project with "zinspector.objects.project.>"
// or every removal with "zinspector.objects.*.removed".
package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// Action names what happened to an object.
type Action string

// Lifecycle actions.
const (
	ActionCreated Action = "created"
	ActionRemoved Action = "removed"
	ActionLoaded  Action = "loaded"
	ActionSaved   Action = "saved"
)

// Event describes one lifecycle change.
type Event struct {
	ID     registry.ID `json:"id"`
	Kind   string      `json:"kind"`
	Name   string      `json:"name"`
	Parent registry.ID `json:"parent,omitempty"`
	Action Action      `json:"action"`
	Path   string      `json:"path,omitempty"`
	Time   time.Time   `json:"time"`
}

// Subject returns the subject e is published on.
func Subject(prefix string, e Event) string {
	return fmt.Sprintf("%s.objects.%s.%s", prefix, strings.ToLower(e.Kind), e.Action)
}

// Publisher delivers events. Publish must not block on slow subscribers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (Nop) Close() error { return nil }
