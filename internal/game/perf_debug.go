package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"isozombie/internal/monitoring"
)

const (
	perfLowFpsThreshold = 50.0
	perfLowFpsDuration  = 3 * time.Second
	perfLogInterval     = 3 * time.Second
)

// perfWatch logs a snapshot when the frame rate stays low for a while.
type perfWatch struct {
	lowSince time.Time
	lastLog  time.Time
}

// observe returns true when a snapshot should be logged at now.
func (pw *perfWatch) observe(now time.Time, fps float64) bool {
	if fps <= 0 || fps >= perfLowFpsThreshold {
		pw.lowSince = time.Time{}
		pw.lastLog = time.Time{}
		return false
	}
	if pw.lowSince.IsZero() {
		pw.lowSince = now
		return false
	}
	if now.Sub(pw.lowSince) < perfLowFpsDuration {
		return false
	}
	if !pw.lastLog.IsZero() && now.Sub(pw.lastLog) < perfLogInterval {
		return false
	}
	pw.lastLog = now
	return true
}

// perfSnapshot formats the monitor stats and the likely causes of a slow
// frame.
func perfSnapshot(fps float64, s *SimulationState, stats map[string]interface{}) string {
	var causes []string
	if alive := s.AliveZombies(); alive > 100 {
		causes = append(causes, fmt.Sprintf("zombies (%d)", alive))
	}
	if n := s.Bullets.Len(); n > 200 {
		causes = append(causes, fmt.Sprintf("bullets (%d)", n))
	}
	if ms := getPerfFloat(stats, "entity_update_time_ms"); ms > 8 {
		causes = append(causes, fmt.Sprintf("entity update %.1fms", ms))
	}
	causeText := "none obvious"
	if len(causes) > 0 {
		causeText = strings.Join(causes, ", ")
	}

	return fmt.Sprintf(
		"[PERF] fps=%.1f causes=%s | projection=%.2fms entity=%.2fms staging=%.2fms routes=%d/%d nodes=%d mem=%dMB gc=%d",
		fps,
		causeText,
		getPerfFloat(stats, "projection_time_ms"),
		getPerfFloat(stats, "entity_update_time_ms"),
		getPerfFloat(stats, "staging_time_ms"),
		getPerfUint(stats, "routes_found"),
		getPerfUint(stats, "routes_found")+getPerfUint(stats, "routes_failed"),
		getPerfUint(stats, "nodes_expanded"),
		getPerfUint(stats, "memory_alloc_mb"),
		getPerfUint(stats, "gc_cycles"),
	)
}

func (g *Game) maybeLogPerfDrop(now time.Time, fps float64, monitor *monitoring.PerformanceMonitor) {
	if !g.perf.observe(now, fps) {
		return
	}
	log.Print(perfSnapshot(fps, g.orch.State(), monitor.GetDetailedStats()))
}

func getPerfFloat(stats map[string]interface{}, key string) float64 {
	switch v := stats[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	}
	return 0
}

func getPerfUint(stats map[string]interface{}, key string) uint64 {
	switch v := stats[key].(type) {
	case uint64:
		return v
	case uint32:
		return uint64(v)
	case int64:
		return uint64(v)
	case float64:
		return uint64(v)
	}
	return 0
}
