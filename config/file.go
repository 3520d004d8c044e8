package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// fileOverrides mirrors the tunable sections as an optional YAML overlay.
// Missing sections leave the built-in defaults untouched.
type fileOverrides struct {
	Player    *PlayerConfig    `yaml:"player"`
	Swing     *SwingConfig     `yaml:"swing"`
	Collision *CollisionConfig `yaml:"collision"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Platform  *PlatformConfig  `yaml:"platform"`
	Run       *RunConfig       `yaml:"run"`
	Camera    *CameraConfig    `yaml:"camera"`
}

// LoadFile applies YAML overrides from path on top of the defaults and then
// re-validates. A missing file is not an error.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var ov fileOverrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if ov.Player != nil {
		Player = *ov.Player
	}
	if ov.Swing != nil {
		Swing = *ov.Swing
	}
	if ov.Collision != nil {
		Collision = *ov.Collision
	}
	if ov.Enemy != nil {
		Enemy = *ov.Enemy
	}
	if ov.Platform != nil {
		Platform = *ov.Platform
	}
	if ov.Run != nil {
		Run = *ov.Run
	}
	if ov.Camera != nil {
		Camera = *ov.Camera
	}

	if violations := Validate(); len(violations) > 0 {
		return fmt.Errorf("config %s invalid: %s", path, strings.Join(violations, "; "))
	}
	return nil
}

// Watcher reports config file changes on disk, for live tuning during
// development. It only notifies; the receiver applies LoadFile so the
// config globals are written from one goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	Reloads chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the directory containing path for config changes.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		Reloads: make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run(path)
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run owns the outbound channels and closes them on exit. Every send
// selects against closeCh so Close never strands the goroutine on a
// full channel.
func (w *Watcher) run(path string) {
	defer close(w.Errors)
	defer close(w.Reloads)

	var lastReload time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			// Editors fire several events per save.
			if time.Since(lastReload) < 100*time.Millisecond {
				continue
			}
			lastReload = time.Now()
			select {
			case w.Reloads <- path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
