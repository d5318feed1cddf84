package evergreen

import (
	"time"

	"go.uber.org/zap"
)

// frameStats holds per-frame timing for the tree pass.
// Only populated when the scene is in debug mode.
type frameStats struct {
	projectTime   time.Duration
	sortTime      time.Duration
	drawTime      time.Duration
	particleCount int
	snowCount     int
}

// debugLog writes frame timing at debug level.
func (s *Scene) debugLog(stats *frameStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		zap.Duration("project", stats.projectTime),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("draw", stats.drawTime),
		zap.Duration("total", stats.projectTime+stats.sortTime+stats.drawTime),
		zap.Int("particles", stats.particleCount),
		zap.Int("snow", stats.snowCount),
	)
}

// logTree records the composition of a freshly built tree.
func (s *Scene) logTree(msg string, t *Tree) {
	s.logger.Debug(msg,
		zap.Bool("dense", t.Dense),
		zap.Int("foliage", len(t.Foliage)),
		zap.Int("lights", len(t.Lights)),
		zap.Int("trunk", len(t.Trunk)),
		zap.Float64("width", s.geom.Width),
		zap.Float64("height", s.geom.Height),
	)
}
