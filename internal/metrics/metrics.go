package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_appointments_total",
			Help: "Total number of appointments created",
		},
		[]string{"status"},
	)

	AppointmentTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_appointment_transitions_total",
			Help: "Total number of appointment status transitions",
		},
		[]string{"to"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_booking_conflicts_total",
			Help: "Total number of bookings rejected due to a slot conflict",
		},
	)

	SlotQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_slot_queries_total",
			Help: "Total number of available-slot queries",
		},
	)

	TrainerSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitbook_trainer_searches_total",
			Help: "Total number of available-trainer searches",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitbook_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointment(status string) {
	AppointmentsTotal.WithLabelValues(status).Inc()
}

func RecordTransition(to string) {
	AppointmentTransitionsTotal.WithLabelValues(to).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordSlotQuery() {
	SlotQueriesTotal.Inc()
}

func RecordTrainerSearch() {
	TrainerSearchesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
