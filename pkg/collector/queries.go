package collector

// PromQL for the four metric families, one instance substituted per node.
// Filesystem rows are limited to real local/nfs mounts, network rows to
// physical eth/ens interfaces.
var (
	nodeListQuery = `node_uname_info`

	diskSizeQuery = `node_filesystem_size_bytes{instance=~"%s",fstype=~"ext.*|xfs|nfs",mountpoint!~".*pod.*"}`
	diskFreeQuery = `node_filesystem_free_bytes{instance=~"%s",fstype=~"ext.*|xfs|nfs",mountpoint!~".*pod.*"}`

	cpuUsageQuery   = `(1 - avg(irate(node_cpu_seconds_total{instance=~"%s",mode="idle"}[3m])) by (instance)) * 100`
	cpuCoreNumQuery = `count(node_cpu_seconds_total{instance=~"%s",mode="system"}) by (instance)`

	memTotalQuery = `node_memory_MemTotal_bytes{instance=~"%s"}`
	memAvailQuery = `node_memory_MemAvailable_bytes{instance=~"%s"}`

	netDownloadQuery = `max(irate(node_network_receive_bytes_total{instance=~"%s",device=~"eth.*|ens.*"}[3m])*8) by (instance)`
	netUploadQuery   = `max(irate(node_network_transmit_bytes_total{instance=~"%s",device=~"eth.*|ens.*"}[3m])*8) by (instance)`
)
