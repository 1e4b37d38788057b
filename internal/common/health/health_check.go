package health

import (
	"runtime"
	"time"

	"gorm.io/gorm"
)

// HealthChecker reports process and dependency health
type HealthChecker struct {
	db        *gorm.DB
	version   string
	startedAt time.Time
}

type Status struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	UptimeSec int64             `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func NewHealthChecker(db *gorm.DB, version string) *HealthChecker {
	return &HealthChecker{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

// Liveness only confirms the process is responding.
func (h *HealthChecker) Liveness() Status {
	return Status{
		Status:    "ok",
		Version:   h.version,
		UptimeSec: int64(time.Since(h.startedAt).Seconds()),
	}
}

// Readiness pings the database; not ready until it answers.
func (h *HealthChecker) Readiness() Status {
	checks := map[string]string{"database": "ok"}
	status := "ok"

	sqlDB, err := h.db.DB()
	if err != nil {
		checks["database"] = err.Error()
		status = "unavailable"
	} else if err := sqlDB.Ping(); err != nil {
		checks["database"] = err.Error()
		status = "unavailable"
	}

	return Status{
		Status:    status,
		Version:   h.version,
		UptimeSec: int64(time.Since(h.startedAt).Seconds()),
		Checks:    checks,
	}
}

// Detailed adds runtime stats to the readiness report.
func (h *HealthChecker) Detailed() map[string]interface{} {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]interface{}{
		"health":     h.Readiness(),
		"goroutines": runtime.NumGoroutine(),
		"heap_alloc": mem.HeapAlloc,
		"num_gc":     mem.NumGC,
	}
}
