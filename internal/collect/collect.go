// Package collect gathers raw host result files from a directory so they
// can be handed to the aggregator as one complete set. The external host
// drops one file per work item; the collector watches until the expected
// count arrives or the context ends, then returns whatever subset it has
// (the aggregator produces a best-effort verdict from partial sets).
package collect

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/quorumlab/quorum/internal/model"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// DefaultRescanInterval is the fallback periodic rescan for events fsnotify
// misses (NFS, editors doing atomic renames).
const DefaultRescanInterval = 2 * time.Second

// Collector watches a results directory until the expected number of raw
// output files is present.
type Collector struct {
	dir      string
	expect   int
	rescan   time.Duration
	logLevel LogLevel
	logger   *log.Logger
}

// Option configures a Collector.
type Option func(*Collector)

func WithRescanInterval(d time.Duration) Option {
	return func(c *Collector) { c.rescan = d }
}

func WithLogger(logger *log.Logger, level LogLevel) Option {
	return func(c *Collector) {
		c.logger = logger
		c.logLevel = level
	}
}

// New creates a Collector for dir that waits for expect result files.
func New(dir string, expect int, opts ...Option) *Collector {
	c := &Collector{
		dir:      dir,
		expect:   expect,
		rescan:   DefaultRescanInterval,
		logLevel: LogLevelInfo,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect blocks until the expected number of result files is present in
// the directory or ctx ends. It returns the outputs found either way; a
// short set is not an error (partial failure upstream is the host's
// problem, aggregation still proceeds).
func (c *Collector) Collect(ctx context.Context) ([]model.RawOutput, error) {
	outputs, err := c.scan()
	if err != nil {
		return nil, err
	}
	if len(outputs) >= c.expect {
		return outputs, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.dir); err != nil {
		return nil, fmt.Errorf("watch %s: %w", c.dir, err)
	}

	ticker := time.NewTicker(c.rescan)
	defer ticker.Stop()

	c.log(LogLevelInfo, "waiting for results: have=%d expect=%d dir=%s", len(outputs), c.expect, c.dir)

	for {
		select {
		case <-ctx.Done():
			c.log(LogLevelWarn, "collection ended early: have=%d expect=%d", len(outputs), c.expect)
			return outputs, nil

		case event, ok := <-watcher.Events:
			if !ok {
				return outputs, nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				c.log(LogLevelDebug, "fsnotify event=%s file=%s", event.Op, event.Name)
				outputs, err = c.scan()
				if err != nil {
					return nil, err
				}
				if len(outputs) >= c.expect {
					return outputs, nil
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return outputs, nil
			}
			c.log(LogLevelError, "fsnotify error=%v", err)

		case <-ticker.C:
			outputs, err = c.scan()
			if err != nil {
				return nil, err
			}
			if len(outputs) >= c.expect {
				return outputs, nil
			}
		}
	}
}

// Scan reads every result file currently in dir once, without waiting.
func Scan(dir string) ([]model.RawOutput, error) {
	return New(dir, 0).scan()
}

// scan reads every result file currently in the directory, in parallel,
// and returns the outputs sorted by source id for deterministic ordering.
func (c *Collector) scan() ([]model.RawOutput, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read results dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(c.dir, entry.Name()))
	}

	var (
		mu      sync.Mutex
		outputs []model.RawOutput
	)

	g := new(errgroup.Group)
	g.SetLimit(8)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read result file %s: %w", path, err)
			}
			out := model.RawOutput{
				SourceID:    sourceIDFor(path),
				Description: sourceIDFor(path),
				Output:      string(content),
			}
			mu.Lock()
			outputs = append(outputs, out)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(outputs, func(i, j int) bool {
		return outputs[i].SourceID < outputs[j].SourceID
	})
	return outputs, nil
}

// sourceIDFor derives the source identifier from a result file name:
// the base name without extension, e.g. results/Chain-A verify.txt →
// "Chain-A verify".
func sourceIDFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (c *Collector) log(level LogLevel, format string, args ...any) {
	if level < c.logLevel {
		return
	}
	c.logger.Printf("[%s] %s", logLevelNames[level], fmt.Sprintf(format, args...))
}
