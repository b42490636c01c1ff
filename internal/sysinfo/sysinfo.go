// Package sysinfo reports facts about the host running the server.
package sysinfo

import (
	"os"
	"runtime"
)

// Info is the payload of the system_info tool.
type Info struct {
	Hostname     string `json:"hostname"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
	CPUCount     int    `json:"cpu_count"`
	GoVersion    string `json:"go_version"`
}

// Provider returns host information.
type Provider interface {
	Info() Info
}

// Runtime reads host information from the Go runtime and the OS.
type Runtime struct{}

func (Runtime) Info() Info {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = os.Getenv("HOSTNAME")
	}
	if hostname == "" {
		hostname = "unknown"
	}
	return Info{
		Hostname:     hostname,
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		CPUCount:     runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}
}

// Static always returns the same Info.
type Static Info

func (s Static) Info() Info { return Info(s) }
