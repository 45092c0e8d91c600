//go:build !debug
// +build !debug

package raybend

func DebugLog(string, ...interface{}) {}

func DebugLogOnce(string, ...interface{}) {}
