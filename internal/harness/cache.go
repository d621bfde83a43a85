package harness

import "sync"

// cache memoizes one capture per example name for the lifetime of the
// process. The first caller runs the subprocess; everyone else, including
// later assertions against the same example, sees the same capture.
type cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once sync.Once
	cap  *Capture
	err  error
}

func newCache() *cache {
	return &cache{entries: make(map[string]*entry)}
}

func (c *cache) get(name string, run func() (*Capture, error)) (*Capture, error) {
	c.mu.Lock()
	e, ok := c.entries[name]
	if !ok {
		e = &entry{}
		c.entries[name] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.cap, e.err = run()
	})
	return e.cap, e.err
}
