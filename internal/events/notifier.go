/*
 * Copyright (c) 2026, PrivacyKit (https://privacykit.dev).
 *
 * PrivacyKit licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package events

import (
	"sync"

	"github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/system/log"
)

// EventType distinguishes the two consent change notifications.
type EventType string

const (
	// EventConsentUpdated carries the freshly persisted record.
	EventConsentUpdated EventType = "consent-updated"
	// EventConsentReset carries no payload.
	EventConsentReset EventType = "consent-reset"
)

// Event is delivered to subscribed handlers. Record is nil for reset events.
type Event struct {
	Type   EventType
	Record *model.ConsentRecord
}

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Notifier is an in-process publish/subscribe channel for consent changes.
// Handlers run synchronously on the publishing goroutine, in subscription
// order. There is no buffering: a handler subscribed after an event fired
// never sees that event.
type Notifier struct {
	mutex  sync.RWMutex
	subs   map[EventType][]subscription
	nextID uint64
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for one event type and returns an
// unsubscribe function. Unsubscribing during a handler's execution is safe
// and does not disturb the in-flight dispatch to other subscribers.
func (n *Notifier) Subscribe(eventType EventType, handler Handler) func() {
	n.mutex.Lock()
	n.nextID++
	id := n.nextID
	n.subs[eventType] = append(n.subs[eventType], subscription{id: id, handler: handler})
	n.mutex.Unlock()

	return func() {
		n.mutex.Lock()
		defer n.mutex.Unlock()
		subs := n.subs[eventType]
		for i, sub := range subs {
			if sub.id == id {
				n.subs[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every matching subscriber, synchronously and
// in subscription order. The subscriber list is snapshotted before dispatch
// so unsubscribes from inside a handler take effect only for later publishes.
// Panicking handlers are recovered; a broken observer must not take the host
// down with it.
func (n *Notifier) Publish(event Event) {
	n.mutex.RLock()
	subs := make([]subscription, len(n.subs[event.Type]))
	copy(subs, n.subs[event.Type])
	n.mutex.RUnlock()

	for _, sub := range subs {
		n.dispatch(event, sub)
	}
}

func (n *Notifier) dispatch(event Event, sub subscription) {
	defer func() {
		if r := recover(); r != nil {
			log.GetLogger().Error("consent event handler panicked",
				log.String("event", string(event.Type)),
				log.Any("panic", r),
			)
		}
	}()
	sub.handler(event)
}
