// Package report abstracts progress reporting out of the completion
// engine, the way algorithms.BFSOptions' OnVisit/OnEnqueue/OnDequeue hooks
// abstract traversal callbacks out of algorithms.BFS in the teacher repo.
// The default implementation logs through logrus, the structured-logging
// package used the same way by gopherjs's build cache (a package-level
// *logrus.Logger, Infof/Warningf calls instead of fmt.Printf).
package report

import "github.com/sirupsen/logrus"

// Stats is a snapshot of engine progress, reported at most once per
// configured report_interval (spec.md §6).
type Stats struct {
	NodesActive      int
	NodesDefined     int
	RelationQueueLen int
	CoincidenceQueue int
}

// Sink receives progress snapshots. Implementations must not block the
// engine for long; Run calls Progress synchronously from its own
// checkpoints.
type Sink interface {
	Progress(s Stats)
}

// noopSink discards every snapshot; stephen.Init installs it by default
// so report_interval is opt-in, not mandatory.
type noopSink struct{}

func (noopSink) Progress(Stats) {}

// NoopSink returns a Sink that does nothing, for engines that never
// configured a report_interval.
func NoopSink() Sink { return noopSink{} }

// logrusSink adapts a *logrus.Logger to Sink, structuring each snapshot
// as fields rather than a formatted message, the way gopherjs's build
// cache prefers leveled calls with interpolated detail over bare Printf.
type logrusSink struct {
	logger *logrus.Logger
}

// LogrusSink wraps logger as a Sink. A nil logger falls back to
// logrus.StandardLogger().
func LogrusSink(logger *logrus.Logger) Sink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return logrusSink{logger: logger}
}

func (s logrusSink) Progress(stats Stats) {
	s.logger.WithFields(logrus.Fields{
		"nodes_active":      stats.NodesActive,
		"nodes_defined":     stats.NodesDefined,
		"relation_queue":    stats.RelationQueueLen,
		"coincidence_queue": stats.CoincidenceQueue,
	}).Info("stephen: completion progress")
}
