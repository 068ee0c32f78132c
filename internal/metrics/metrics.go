package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
		[]string{LabelSource},
	)

	CurrencySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
		[]string{LabelSource},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	UnknownEffectPurchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnknownEffectPurchases,
			Help: HelpTextUnknownEffectPurchases,
		},
	)

	RewardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDrawn,
			Help: HelpTextRewardsDrawn,
		},
		[]string{LabelCategory},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
	)

	RoleClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoleClaims,
			Help: HelpTextRoleClaims,
		},
	)

	GamesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesSettled,
			Help: HelpTextGamesSettled,
		},
		[]string{LabelGame, LabelOutcome},
	)

	BlackjackSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBlackjackSessionsActive,
			Help: HelpTextBlackjackSessionsActive,
		},
	)

	BlackjackSessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBlackjackSessionsExpired,
			Help: HelpTextBlackjackSessionsExpired,
		},
	)
)
