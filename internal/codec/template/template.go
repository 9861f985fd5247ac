// Package template loads the skeleton documents messages are packed into
// and parses wire text into comment-free trees.
package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/beevik/etree"
	"golang.org/x/sync/singleflight"

	"hiebus/internal/codec/slot"
)

//go:embed skeletons/*.xml
var embedded embed.FS

var (
	ErrNotFound  = errors.New("template not found")
	ErrMalformed = errors.New("malformed xml")
)

// Observer is told about skeleton cache lookups.
type Observer interface {
	CacheHit(name string)
	CacheMiss(name string)
}

// Loader resolves skeletons by name (the message kind name) to
// "<name>.xml" in its file system. It is safe for concurrent use: callers
// always receive a private copy they may mutate freely.
type Loader struct {
	fsys     fs.FS
	cache    bool
	observer Observer

	mu    sync.RWMutex
	docs  map[string]*etree.Document
	group singleflight.Group
}

type Option func(*Loader)

// WithFS reads skeletons from fsys instead of the embedded set.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithDir reads skeletons from a directory on disk.
func WithDir(dir string) Option {
	return WithFS(os.DirFS(dir))
}

// WithCache turns the parsed-skeleton cache on or off. It is on by default;
// with it off every Load reads and parses the file again.
func WithCache(enabled bool) Option {
	return func(l *Loader) {
		l.cache = enabled
	}
}

func WithObserver(o Observer) Option {
	return func(l *Loader) {
		l.observer = o
	}
}

func New(opts ...Option) *Loader {
	sub, err := fs.Sub(embedded, "skeletons")
	if err != nil {
		panic(err)
	}
	l := &Loader{
		fsys:  sub,
		cache: true,
		docs:  make(map[string]*etree.Document),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns a fresh, comment-free copy of the named skeleton.
func (l *Loader) Load(name string) (*etree.Document, error) {
	if !l.cache {
		return l.read(name)
	}

	l.mu.RLock()
	doc, ok := l.docs[name]
	l.mu.RUnlock()
	if ok {
		l.hit(name)
		return doc.Copy(), nil
	}
	l.miss(name)

	v, err, _ := l.group.Do(name, func() (any, error) {
		l.mu.RLock()
		cached, ok := l.docs[name]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}
		parsed, err := l.read(name)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.docs[name] = parsed
		l.mu.Unlock()
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*etree.Document).Copy(), nil
}

// Check loads every named skeleton and reports the first failure.
func (l *Loader) Check(names ...string) error {
	for _, name := range names {
		if _, err := l.Load(name); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) read(name string) (*etree.Document, error) {
	file := name + ".xml"
	if !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("skeleton %s: %w", name, err)
	}
	return doc, nil
}

func (l *Loader) hit(name string) {
	if l.observer != nil {
		l.observer.CacheHit(name)
	}
}

func (l *Loader) miss(name string) {
	if l.observer != nil {
		l.observer.CacheMiss(name)
	}
}

// Parse reads wire text into a tree and strips its comments. Text without
// a root element is malformed.
func Parse(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	StripComments(&doc.Element)
	return doc, nil
}

// StripComments removes every comment below e, at any depth, together with
// the whitespace-only text directly before each one.
func StripComments(e *etree.Element) {
	for i := 0; i < len(e.Child); i++ {
		switch t := e.Child[i].(type) {
		case *etree.Comment:
			i -= slot.Prune(t)
		case *etree.Element:
			StripComments(t)
		}
	}
}
