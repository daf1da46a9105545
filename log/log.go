package log

import (
	_log "log"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gookit/color"
)

// Log writes coloured lines to stderr. Debug output is enabled per namespace
// through the DEBUG environment variable ("nobleclass:*" style globs) or
// explicitly with SetDebug.
type Log struct {
	*_log.Logger

	debug atomic.Bool

	mu              sync.RWMutex // protects the following fields
	namespace       string
	namespaceRegexp *regexp.Regexp
}

func NewLog(namespace string) *Log {
	l := &Log{
		Logger: _log.New(os.Stderr, "", 0),
	}

	if namespace != "" {
		l.SetPrefix(namespace)
	}

	if debug := os.Getenv("DEBUG"); debug != "" {
		l.namespaceRegexp = namespacePattern(debug)
	}
	return l
}

// namespacePattern turns "a:*,b" into a regexp matching either glob.
func namespacePattern(debug string) *regexp.Regexp {
	var globs []string
	for _, glob := range strings.Split(debug, ",") {
		if glob = strings.TrimSpace(glob); glob != "" {
			globs = append(globs, strings.ReplaceAll(regexp.QuoteMeta(glob), `\*`, `.*`))
		}
	}
	if len(globs) == 0 {
		return nil
	}
	return regexp.MustCompile("^(?:" + strings.Join(globs, "|") + ")$")
}

func (d *Log) Enabled() bool {
	if d.debug.Load() {
		return true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.namespaceRegexp != nil && d.namespaceRegexp.MatchString(d.namespace)
}

func (d *Log) SetDebug(debug bool) {
	d.debug.Store(debug)
}

// Console Debug Debug.
func (d *Log) Debug(message string, args ...any) {
	if d.Enabled() {
		d.Logger.Println(color.Debug.Sprintf(message, args...))
	}
}

// Console log Info.
func (d *Log) Info(message string, args ...any) {
	d.Logger.Println(color.Info.Sprintf(message, args...))
}

// Console log Warning.
func (d *Log) Warning(message string, args ...any) {
	d.Logger.Println(color.Warn.Sprintf(message, args...))
}

// Console log Error.
func (d *Log) Error(message string, args ...any) {
	d.Logger.Println(color.Danger.Sprintf(message, args...))
}

// Prefix returns the namespace of the logger.
func (d *Log) Prefix() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.namespace
}

// SetPrefix sets the namespace, which is also the output prefix.
func (d *Log) SetPrefix(namespace string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.namespace = namespace

	d.Logger.SetPrefix(namespace + " ")
}
