package metrics

// Namespace prefixes every metric of the service.
const Namespace = "sync_keeper"

// Sync metric names
const (
	MetricNameStatesStamped      = "states_stamped_total"
	MetricNameCascadeSteps       = "cascade_steps_total"
	MetricNameChangesSkipped     = "insignificant_changes_total"
	MetricNameDeletionsRecorded  = "deletions_recorded_total"
	MetricNameFlushesProcessed   = "flushes_processed_total"
	MetricNameFailedItemsFetched = "failed_items_reported_total"
)

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal   = "http_requests_total"
	MetricNameHTTPRequestDuration = "http_request_duration_seconds"
)

// Sync metric help text
const (
	HelpTextStatesStamped      = "Sync states stamped with a new timestamp, per mapping"
	HelpTextCascadeSteps       = "Parent objects reached through a cascade, per parent class"
	HelpTextChangesSkipped     = "Changed objects whose only changes were ignored properties, per class"
	HelpTextDeletionsRecorded  = "Deletion ledger entries recorded, per class"
	HelpTextFlushesProcessed   = "Flush events handled by the subscriber, per outcome"
	HelpTextFailedItemsFetched = "Failed sync items picked up by the reporter, per mapping"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"
)

// Label names
const (
	LabelMapping = "mapping"
	LabelClass   = "class"
	LabelOutcome = "outcome"
	LabelMethod  = "method"
	LabelRoute   = "route"
	LabelStatus  = "status"
)

// Outcome label values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
