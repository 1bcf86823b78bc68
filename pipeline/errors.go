package pipeline

import "fmt"

// ConfigurationError reports an invalid caller-supplied setting (bad horizon
// syntax, horizon longer than the data, unknown region filter). Never retried.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// DataQualityError reports unusable input data (empty input, unparsable or
// non-monotonic dates, missing required columns). Never retried.
type DataQualityError struct {
	Reason string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality error: %s", e.Reason)
}
