//go:build !windows

package bootstrap

func initConsole() {}
