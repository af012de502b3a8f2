package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reflectionsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weekjournal",
		Name:      "reflections_saved_total",
		Help:      "Reflections stored, by completion flag.",
	}, []string{"completed"})

	lockedSavesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "weekjournal",
		Name:      "reflection_saves_locked_total",
		Help:      "Saves rejected because the week was already locked.",
	})

	archiveURLsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weekjournal",
		Name:      "archive_urls_issued_total",
		Help:      "Presigned archive URLs handed out, by HTTP method.",
	}, []string{"method"})
)
