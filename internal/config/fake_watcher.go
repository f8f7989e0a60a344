package config

// FakeWatcher is a WatcherIface implementation for tests.
// Push configs via Send() to simulate file edits.
type FakeWatcher struct {
	ch chan Config
}

// compile-time check
var _ WatcherIface = (*FakeWatcher)(nil)

// NewFakeWatcher creates a FakeWatcher with a buffered channel.
func NewFakeWatcher() *FakeWatcher {
	return &FakeWatcher{ch: make(chan Config, 16)}
}

// Events returns the channel on which configs are delivered.
func (f *FakeWatcher) Events() <-chan Config { return f.ch }

// Close closes the events channel.
func (f *FakeWatcher) Close() { close(f.ch) }

// Send pushes a config into the events channel.
func (f *FakeWatcher) Send(c Config) { f.ch <- c }
