//go:build printerdebug

package printer

func init() { debugChecksEnabled = true }
