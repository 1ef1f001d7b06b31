package printer

import (
	"time"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/inkrune/printcore/pkg/printitems"
)

// TraceEvent is one entry of the optional parallel trace stream (original
// §6.3): nanoseconds since the print run started, the id of the IR node
// being dispatched, and the id of the most recently emitted write-item.
type TraceEvent struct {
	Nanos        int64
	PrintNodeID  uintptr
	WriterNodeID uintptr
}

// Tracer receives TraceEvents as the printer dispatches each IR node.
// Tracing is optional and orthogonal to printing: a nil Tracer passed to New
// or PrintToWriteItems means the printer must not even construct a
// TraceEvent.
type Tracer interface {
	Trace(ev TraceEvent)
}

// LogTracer is a Tracer backed by a go-kit/log logger, the leveled-logging
// convention this stack's host application uses throughout. Every print run
// that installs one gets its own short correlation id so a host running
// several printers
// concurrently (original §5 — each printer owns its state exclusively) can
// demultiplex interleaved trace lines.
type LogTracer struct {
	logger    log.Logger
	sessionID string
	start     time.Time
}

// NewLogTracer wraps logger, stamping every event with a fresh session id
// and starting the trace run's clock now.
func NewLogTracer(logger log.Logger) *LogTracer {
	return &LogTracer{
		logger:    logger,
		sessionID: uuid.NewString(),
		start:     time.Now(),
	}
}

func (t *LogTracer) Trace(ev TraceEvent) {
	level.Debug(t.logger).Log(
		"msg", "print-trace",
		"session", t.sessionID,
		"nanos", ev.Nanos,
		"print_node", ev.PrintNodeID,
		"writer_node", ev.WriterNodeID,
	)
}

func nodeID(n *printitems.PrintNode) uintptr {
	return uintptr(unsafe.Pointer(n))
}

func writeItemID(w *WriteItem) uintptr {
	return uintptr(unsafe.Pointer(w))
}
