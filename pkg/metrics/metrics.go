package metrics

import (
  "github.com/prometheus/client_golang/prometheus"
  "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
  // Fetch metrics
  FetchDuration = promauto.NewHistogram(
    prometheus.HistogramOpts{
      Name:    "cmctop_fetch_duration_seconds",
      Help:    "Time to render and capture the listing page",
      Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
    })
  FetchErrors = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_fetch_errors_total",
      Help: "Browser fetch failures",
    })

  // Extraction metrics
  ExtractedQuotes = promauto.NewGauge(
    prometheus.GaugeOpts{
      Name: "cmctop_extracted_quotes",
      Help: "Quotes extracted in the last run",
    })
  ExtractErrors = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_extract_errors_total",
      Help: "Extraction failures (missing table, selector drift, parse errors)",
    })

  // Report metrics
  ReportErrors = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_report_errors_total",
      Help: "Snapshot CSV write failures",
    })

  // Cache/Pub metrics
  CachePubCounter = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_cachepub_quotes_total",
      Help: "Quotes cached and published to Redis",
    })
  CachePubErrors = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_cachepub_errors_total",
      Help: "Redis cache/pub/sub errors",
    })

  // Archival metrics
  ArchivalSuccessCounter = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_archival_success_total",
      Help: "Snapshots archived to Postgres",
    })
  ArchivalErrorCounter = promauto.NewCounter(
    prometheus.CounterOpts{
      Name: "cmctop_archival_errors_total",
      Help: "Postgres archival failures",
    })

  // Redis client metrics
  RedisOperationDuration = promauto.NewHistogramVec(
    prometheus.HistogramOpts{
      Name:    "cmctop_redis_operation_duration_seconds",
      Help:    "Redis operation latency",
      Buckets: prometheus.DefBuckets,
    },
    []string{"operation", "status"})
  RedisErrors = promauto.NewCounterVec(
    prometheus.CounterOpts{
      Name: "cmctop_redis_errors_total",
      Help: "Redis operation errors",
    },
    []string{"operation"})

  // Database metrics
  DatabaseOperationDuration = promauto.NewHistogramVec(
    prometheus.HistogramOpts{
      Name:    "cmctop_database_operation_duration_seconds",
      Help:    "Database operation latency",
      Buckets: prometheus.DefBuckets,
    },
    []string{"operation", "status"})
)
