package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	activitiesLoggedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_log",
		Subsystem: "activities",
		Name:      "logged_total",
		Help:      "Number of activities logged, labeled by activity type.",
	}, []string{"activity_type"})

	caloriesLoggedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_log",
		Subsystem: "activities",
		Name:      "calories_total",
		Help:      "Sum of estimated calories across logged activities.",
	})

	previewCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_log",
		Subsystem: "estimator",
		Name:      "previews_total",
		Help:      "Number of live calorie previews served.",
	})

	accumulatedMinutesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_log",
		Subsystem: "progress",
		Name:      "accumulated_minutes",
		Help:      "Minutes accumulated toward the weekly target.",
	})

	progressPercentGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_log",
		Subsystem: "progress",
		Name:      "percent",
		Help:      "Progress toward the weekly target, capped at 100.",
	})

	alertCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_log",
		Subsystem: "progress",
		Name:      "alerts_total",
		Help:      "Progress alerts raised after logging, labeled by alert kind.",
	}, []string{"alert"})
)

func init() {
	prometheus.MustRegister(activitiesLoggedCounter, caloriesLoggedCounter, previewCounter, accumulatedMinutesGauge, progressPercentGauge, alertCounter)
}

// RecordActivityLogged counts a logged activity and its calories.
func RecordActivityLogged(activityType string, calories int) {
	activitiesLoggedCounter.WithLabelValues(activityType).Inc()
	if calories > 0 {
		caloriesLoggedCounter.Add(float64(calories))
	}
}

// RecordPreview counts a served live estimate.
func RecordPreview() {
	previewCounter.Inc()
}

// RecordProgress updates the progress gauges.
func RecordProgress(accumulatedMinutes, percent float64) {
	accumulatedMinutesGauge.Set(accumulatedMinutes)
	progressPercentGauge.Set(percent)
}

// RecordAlert counts a raised alert. Empty kinds are ignored.
func RecordAlert(kind string) {
	if kind == "" {
		return
	}
	alertCounter.WithLabelValues(kind).Inc()
}
