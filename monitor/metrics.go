package monitor

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector the API exposes on /metrics.
var Registry = prometheus.NewRegistry()

var (
	ReviewsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "owlrecruit",
		Name:      "reviews_submitted_total",
		Help:      "Review submissions written (inserted or updated).",
	})

	CommentsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "owlrecruit",
		Name:      "comments_posted_total",
		Help:      "Comments appended to application threads.",
	})

	NotificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "owlrecruit",
		Name:      "notification_failures_total",
		Help:      "Comment notification e-mails that could not be sent.",
	})

	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "owlrecruit",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ReviewsSubmitted,
		CommentsPosted,
		NotificationFailures,
		RequestDuration,
	)
}

// RegisterMetrics mounts the Prometheus scrape endpoint.
func RegisterMetrics(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})))
}

// Middleware records request latency labelled by the matched route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
