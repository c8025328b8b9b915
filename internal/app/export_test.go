// export_test.go exports private functions for white-box testing.
package app

// ServeListener exports serve for testing.
var ServeListener = (*App).serve
