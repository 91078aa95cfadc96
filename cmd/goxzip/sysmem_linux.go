//go:build linux

package main

import "syscall"

// getTotalSystemMemory returns total system RAM in bytes (Linux)
func getTotalSystemMemory() (uint64, error) {
	var si syscall.Sysinfo_t
	if err := syscall.Sysinfo(&si); err != nil {
		return 0, err
	}

	// Totalram is in units of si.Unit bytes
	return si.Totalram * uint64(si.Unit), nil
}
