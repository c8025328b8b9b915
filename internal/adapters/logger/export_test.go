// export_test.go exports private functions for white-box testing.
package logger

// FormatErrorChain exports formatErrorChain for testing.
var FormatErrorChain = formatErrorChain
