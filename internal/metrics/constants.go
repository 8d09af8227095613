package metrics

// Metric names
const (
	MetricNameEquipmentGenerated   = "equipment_generated_total"
	MetricNameEquipmentEnchantment = "equipment_enchantments"
	MetricNameCapacityUsage        = "equipment_capacity_usage_percent"
	MetricNameHistoryOperations    = "equipment_history_operations_total"
)

// Metric help text
const (
	HelpTextEquipmentGenerated   = "Total number of generated equipment by quality and state"
	HelpTextEquipmentEnchantment = "Number of enchantments on each generated item"
	HelpTextCapacityUsage        = "Share of enchantment capacity used by each generated item"
	HelpTextHistoryOperations    = "History store calls by operation and result"
)

// Label names
const (
	LabelQuality   = "quality"
	LabelState     = "state"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// History operations
const (
	OperationAppend = "append"
	OperationList   = "list"
	OperationClear  = "clear"
)

// Operation results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Buckets
var (
	EnchantmentBuckets   = []float64{0, 1, 2, 3, 4, 5, 6}
	CapacityUsageBuckets = []float64{10, 25, 50, 70, 90, 100}
)
