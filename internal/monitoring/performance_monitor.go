package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Stage names accepted by ProfiledFunction.
const (
	StageProjection   = "projection"
	StageEntityUpdate = "entity_update"
	StageStaging      = "staging"
)

// PerformanceMonitor tracks frame timing, per-stage tick profiling and
// pathfinding counters.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame
	totalTime  atomic.Uint64 // nanoseconds, all frames

	// Tick stage metrics
	projectionTime   atomic.Uint64
	entityUpdateTime atomic.Uint64
	stagingTime      atomic.Uint64

	// Pathfinding
	routesFound   atomic.Uint64
	routesFailed  atomic.Uint64
	nodesExpanded atomic.Uint64

	// Game-specific metrics
	zombiesAlive  atomic.Int32
	bulletsActive atomic.Int32
	hitsDetected  atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	startTime    time.Time

	// Configuration
	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.startTime))
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	ns := uint64(d.Nanoseconds())
	pm.frameTime.Store(ns)
	pm.totalTime.Add(ns)
	count := pm.frameCount.Add(1)

	if pm.enableDetailed {
		pm.mutex.Lock()
		pm.avgFrameTime = float64(pm.totalTime.Load()) / float64(count)
		pm.mutex.Unlock()
	}
}

// RecordRoute counts one pathfinding search. Safe to call from the tick.
func (pm *PerformanceMonitor) RecordRoute(found bool, expanded int) {
	if found {
		pm.routesFound.Add(1)
	} else {
		pm.routesFailed.Add(1)
	}
	if expanded > 0 {
		pm.nodesExpanded.Add(uint64(expanded))
	}
}

// RouteStats is a snapshot of the pathfinding counters.
type RouteStats struct {
	Found         uint64
	Failed        uint64
	NodesExpanded uint64
}

// Total is Found + Failed.
func (rs RouteStats) Total() uint64 {
	return rs.Found + rs.Failed
}

// FailureRatio is Failed / Total, 0 when nothing was searched.
func (rs RouteStats) FailureRatio() float64 {
	if rs.Total() == 0 {
		return 0
	}
	return float64(rs.Failed) / float64(rs.Total())
}

// GetRouteStats returns the pathfinding counters.
func (pm *PerformanceMonitor) GetRouteStats() RouteStats {
	return RouteStats{
		Found:         pm.routesFound.Load(),
		Failed:        pm.routesFailed.Load(),
		NodesExpanded: pm.nodesExpanded.Load(),
	}
}

// GameMetrics tracks game-specific performance data
type GameMetrics struct {
	ZombiesAlive    int32
	BulletsActive   int32
	HitsDetected    uint64
	FramesPerSecond float64
	MemoryUsageMB   uint64
}

// UpdateGameMetrics updates game-specific metrics
func (pm *PerformanceMonitor) UpdateGameMetrics(zombies, bullets int32, hits uint64) {
	pm.zombiesAlive.Store(zombies)
	pm.bulletsActive.Store(bullets)
	pm.hitsDetected.Store(hits)
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() GameMetrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return GameMetrics{
		ZombiesAlive:    pm.zombiesAlive.Load(),
		BulletsActive:   pm.bulletsActive.Load(),
		HitsDetected:    pm.hitsDetected.Load(),
		FramesPerSecond: pm.fps(),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

func (pm *PerformanceMonitor) fps() float64 {
	frameTime := pm.frameTime.Load()
	if frameTime == 0 {
		return 0
	}
	return 1000000000.0 / float64(frameTime)
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	routes := pm.GetRouteStats()
	return map[string]interface{}{
		"uptime_seconds":        time.Since(pm.startTime).Seconds(),
		"frame_count":           pm.frameCount.Load(),
		"avg_frame_time_ms":     pm.avgFrameTime / 1000000,
		"current_fps":           pm.fps(),
		"projection_time_ms":    float64(pm.projectionTime.Load()) / 1000000,
		"entity_update_time_ms": float64(pm.entityUpdateTime.Load()) / 1000000,
		"staging_time_ms":       float64(pm.stagingTime.Load()) / 1000000,
		"routes_found":          routes.Found,
		"routes_failed":         routes.Failed,
		"nodes_expanded":        routes.NodesExpanded,
		"zombies_alive":         pm.zombiesAlive.Load(),
		"bullets_active":        pm.bulletsActive.Load(),
		"hits_detected":         pm.hitsDetected.Load(),
		"memory_alloc_mb":       memStats.Alloc / 1024 / 1024,
		"gc_cycles":             memStats.NumGC,
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts checks for performance issues and returns alerts
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)
	currentTime := time.Now()

	if fps := pm.fps(); fps > 0 && fps < 30 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "low_fps",
			Message:   "Frame rate is below 30 FPS",
			Value:     fps,
			Threshold: 30,
			Timestamp: currentTime,
		})
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := float64(memStats.Alloc) / 1024 / 1024
	if memoryMB > 500 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "high_memory",
			Message:   "Memory usage is above 500MB",
			Value:     memoryMB,
			Threshold: 500,
			Timestamp: currentTime,
		})
	}

	// Zombies boxed in by obstacles fall back to random headings; a high
	// ratio usually means a broken map.
	routes := pm.GetRouteStats()
	if routes.Total() >= 100 && routes.FailureRatio() > 0.5 {
		alerts = append(alerts, PerformanceAlert{
			Type:      "route_failures",
			Message:   "More than half of pathfinding searches found no route",
			Value:     routes.FailureRatio(),
			Threshold: 0.5,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// EnableDetailedLogging enables/disables average frame time tracking
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.totalTime.Store(0)
	pm.projectionTime.Store(0)
	pm.entityUpdateTime.Store(0)
	pm.stagingTime.Store(0)
	pm.routesFound.Store(0)
	pm.routesFailed.Store(0)
	pm.nodesExpanded.Store(0)
	pm.zombiesAlive.Store(0)
	pm.bulletsActive.Store(0)
	pm.hitsDetected.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

// ProfiledFunction wraps a tick stage with timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case StageProjection:
		pm.projectionTime.Store(uint64(duration.Nanoseconds()))
	case StageEntityUpdate:
		pm.entityUpdateTime.Store(uint64(duration.Nanoseconds()))
	case StageStaging:
		pm.stagingTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}
