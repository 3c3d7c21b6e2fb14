//go:build !tinygo

package led

import "statusled-go/types"

func init() { RegisterBackend(types.BackendLog, BuilderFunc(buildLog)) }

// logBackend stands in for hardware on host builds. It prints only when the
// colour changes so a steady mode does not flood the console.
type logBackend struct {
	last  types.Color
	shown bool
}

func buildLog(BuildInput) (Backend, error) { return &logBackend{}, nil }

func (l *logBackend) Name() string { return types.BackendLog }
func (l *logBackend) Init() error  { return nil }

func (l *logBackend) Write(c types.Color) {
	if l.shown && c == l.last {
		return
	}
	l.last, l.shown = c, true
	println("[led] rgb", c.R, c.G, c.B)
}
