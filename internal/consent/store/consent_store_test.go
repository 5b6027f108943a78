package store

import (
	"encoding/json"
	"testing"
	"time"

	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/events"
	"github.com/privacykit/consent-manager/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenBackend fails every operation, simulating an unavailable storage
// context.
type brokenBackend struct{}

func (brokenBackend) Get(string) (string, bool, error) { return "", false, assert.AnError }
func (brokenBackend) Set(string, string) error         { return assert.AnError }
func (brokenBackend) Delete(string) error              { return assert.AnError }
func (brokenBackend) Close() error                     { return nil }

func newTestStore(backend storage.Backend, opts Options) (*ConsentStore, *events.Notifier) {
	notifier := events.NewNotifier()
	return NewConsentStore(backend, notifier, opts), notifier
}

func TestWriteThenReadRoundtrip(t *testing.T) {
	store, _ := newTestStore(storage.NewMemoryBackend(), Options{})

	preferences := model.PreferenceSet{"essential": true, "analytics": true, "marketing": false}
	written := store.Write(preferences)

	require.NotNil(t, written)
	assert.NotEmpty(t, written.ID)
	assert.Equal(t, DefaultVersion, written.Version)

	read := store.Read()
	require.NotNil(t, read)
	assert.Equal(t, preferences, read.Preferences)
	assert.Equal(t, written.ID, read.ID)
	assert.True(t, store.IsPresent())
}

func TestReadReturnsNilWhenEmpty(t *testing.T) {
	store, _ := newTestStore(storage.NewMemoryBackend(), Options{})

	assert.Nil(t, store.Read())
	assert.False(t, store.IsPresent())
}

func TestMalformedRecordIsPurged(t *testing.T) {
	backend := storage.NewMemoryBackend()
	store, _ := newTestStore(backend, Options{})

	require.NoError(t, backend.Set(DefaultStorageKey, "{not json"))

	assert.Nil(t, store.Read())
	_, found, err := backend.Get(DefaultStorageKey)
	require.NoError(t, err)
	assert.False(t, found, "malformed entry is deleted as a side effect")
}

func TestVersionMismatchIsPurged(t *testing.T) {
	backend := storage.NewMemoryBackend()
	store, _ := newTestStore(backend, Options{Version: "2.0"})

	stale, _ := json.Marshal(model.ConsentRecord{
		Preferences: model.PreferenceSet{"essential": true},
		Timestamp:   time.Now().UnixMilli(),
		Version:     "1.0",
	})
	require.NoError(t, backend.Set(DefaultStorageKey, string(stale)))

	assert.Nil(t, store.Read())
	assert.False(t, store.IsPresent())
	_, found, _ := backend.Get(DefaultStorageKey)
	assert.False(t, found, "stale entry is deleted")
}

func TestExpiredRecordIsPurged(t *testing.T) {
	backend := storage.NewMemoryBackend()
	now := time.Now()
	store, _ := newTestStore(backend, Options{
		Expiry: 24 * time.Hour,
		Now:    func() time.Time { return now },
	})

	store.Write(model.PreferenceSet{"essential": true, "marketing": true})
	require.True(t, store.IsPresent())

	// Rewind the persisted timestamp by two days.
	raw, found, err := backend.Get(DefaultStorageKey)
	require.NoError(t, err)
	require.True(t, found)
	var record model.ConsentRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	record.Timestamp = now.Add(-48 * time.Hour).UnixMilli()
	rewound, _ := json.Marshal(record)
	require.NoError(t, backend.Set(DefaultStorageKey, string(rewound)))

	assert.False(t, store.IsPresent())
	_, found, _ = backend.Get(DefaultStorageKey)
	assert.False(t, found, "expired entry is removed from storage")
}

func TestZeroExpiryDisablesExpiration(t *testing.T) {
	backend := storage.NewMemoryBackend()
	store, _ := newTestStore(backend, Options{})

	old, _ := json.Marshal(model.ConsentRecord{
		Preferences: model.PreferenceSet{"essential": true},
		Timestamp:   time.Now().Add(-365 * 24 * time.Hour).UnixMilli(),
		Version:     DefaultVersion,
	})
	require.NoError(t, backend.Set(DefaultStorageKey, string(old)))

	assert.True(t, store.IsPresent())
}

func TestWriteBroadcastsUpdateEvent(t *testing.T) {
	store, notifier := newTestStore(storage.NewMemoryBackend(), Options{})

	var received *model.ConsentRecord
	notifier.Subscribe(events.EventConsentUpdated, func(event events.Event) {
		received = event.Record
	})

	written := store.Write(model.PreferenceSet{"essential": true})

	require.NotNil(t, received)
	assert.Equal(t, written.ID, received.ID)
}

func TestClearBroadcastsResetEvent(t *testing.T) {
	store, notifier := newTestStore(storage.NewMemoryBackend(), Options{})
	store.Write(model.PreferenceSet{"essential": true})

	resets := 0
	notifier.Subscribe(events.EventConsentReset, func(event events.Event) {
		resets++
		assert.Nil(t, event.Record)
	})

	store.Clear()

	assert.Equal(t, 1, resets)
	assert.False(t, store.IsPresent())
}

func TestCustomStorageKey(t *testing.T) {
	backend := storage.NewMemoryBackend()
	store, _ := newTestStore(backend, Options{StorageKey: "acme-consent"})

	store.Write(model.PreferenceSet{"essential": true})

	_, found, _ := backend.Get("acme-consent")
	assert.True(t, found)
	_, found, _ = backend.Get(DefaultStorageKey)
	assert.False(t, found)
}

func TestBrokenBackendDegradesSilently(t *testing.T) {
	store, notifier := newTestStore(brokenBackend{}, Options{})

	updates := 0
	notifier.Subscribe(events.EventConsentUpdated, func(events.Event) { updates++ })

	assert.NotPanics(t, func() {
		assert.Nil(t, store.Read())
		assert.False(t, store.IsPresent())
		assert.NotNil(t, store.Write(model.PreferenceSet{"essential": true}))
		store.Clear()
	})
	assert.Equal(t, 1, updates, "the session still observes the user's choice")
}
