package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameCurrencyEarned           = "currency_earned_total"
	MetricNameCurrencySpent            = "currency_spent_total"
	MetricNameItemsBought              = "shop_items_bought_total"
	MetricNameUnknownEffectPurchases   = "shop_unknown_effect_purchases_total"
	MetricNameRewardsDrawn             = "spinner_rewards_drawn_total"
	MetricNameDailyClaims              = "daily_claims_total"
	MetricNameRoleClaims               = "role_claims_total"
	MetricNameGamesSettled             = "games_settled_total"
	MetricNameBlackjackSessionsActive  = "blackjack_sessions_active"
	MetricNameBlackjackSessionsExpired = "blackjack_sessions_expired_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextCurrencyEarned           = "Total currency credited to accounts, by source"
	HelpTextCurrencySpent            = "Total currency debited from accounts, by source"
	HelpTextItemsBought              = "Total number of shop items bought"
	HelpTextUnknownEffectPurchases   = "Purchases of items whose effect type is not recognised"
	HelpTextRewardsDrawn             = "Total number of rewards drawn, by category"
	HelpTextDailyClaims              = "Total number of daily rewards claimed"
	HelpTextRoleClaims               = "Total number of role claims issued"
	HelpTextGamesSettled             = "Total number of settled game rounds"
	HelpTextBlackjackSessionsActive  = "Current number of open blackjack sessions"
	HelpTextBlackjackSessionsExpired = "Total number of blackjack sessions removed by the TTL sweep"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelSource   = "source"
	LabelCategory = "category"
	LabelGame     = "game"
	LabelOutcome  = "outcome"
)

// Currency sources
const (
	SourceDaily    = "daily"
	SourcePurchase = "purchase"
	SourceSpin     = "spin"
)

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Log messages
const (
	LogMsgDecodePayloadFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
