package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Loader holds the current Config of one file and can hot-reload it.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  Config
	onChange []func(Config)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, current: cfg}, nil
}

// Config returns the latest valid configuration.
func (l *Loader) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers fn to run after every successful reload.
func (l *Loader) OnChange(fn func(Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file now. On error the previous Config stays current.
func (l *Loader) Reload() (Config, error) {
	cfg, err := Load(l.path)
	if err != nil {
		return Config{}, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch reloads the file whenever it is written or re-created, until the
// returned stop function is called. Invalid edits are logged and ignored.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config watcher")
	}
	if err = w.Add(l.path); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "config watcher add %s", l.path)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					klog.Warningf("config: keeping previous settings: %v", err)
					continue
				}
				klog.V(2).Infof("config: reloaded %s", l.path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Warningf("config: watcher: %v", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}
