package collector

import "time"

// DiskUsage is one filesystem row in the disk table.
type DiskUsage struct {
	Instance     string  `json:"instance"`
	Device       string  `json:"device"`
	MountPoint   string  `json:"mount_point"`
	Size         string  `json:"size"`
	Used         string  `json:"used"`
	Free         string  `json:"free"`
	UsagePercent float64 `json:"usage_percent"`
}

// CpuUsage is one node row in the CPU table.
type CpuUsage struct {
	Instance     string  `json:"instance"`
	CoreNum      int     `json:"core_num"`
	UsagePercent float64 `json:"usage_percent"`
}

// MemoryUsage is one node row in the memory table.
type MemoryUsage struct {
	Instance     string  `json:"instance"`
	Total        string  `json:"total"`
	Used         string  `json:"used"`
	UsagePercent float64 `json:"usage_percent"`
}

// NetworkThroughput is one node row in the network table. Network rows carry
// no usage percentage and never receive warning styling.
type NetworkThroughput struct {
	Instance string `json:"instance"`
	Download string `json:"download"`
	Upload   string `json:"upload"`
}

// ReportData aggregates one snapshot of all four metric families. It is
// built fresh on every run and feeds exactly one render.
type ReportData struct {
	Nodes       []string
	Disks       []DiskUsage
	Cpus        []CpuUsage
	Mems        []MemoryUsage
	Nets        []NetworkThroughput
	GeneratedAt time.Time
}
