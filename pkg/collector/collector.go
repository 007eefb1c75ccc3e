package collector

import (
	"context"
	"fmt"
	"time"

	promModel "github.com/prometheus/common/model"

	"github.com/flipped-1121/prometheus-notice/pkg/clientsets"
	"github.com/flipped-1121/prometheus-notice/pkg/helper/prom"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
)

// Querier issues one instant vector query against the metrics backend.
type Querier interface {
	Instant(ctx context.Context, query string) (promModel.Vector, error)
}

type promQuerier struct {
	clientSets *clientsets.StorageClientSet
}

func (q *promQuerier) Instant(ctx context.Context, query string) (promModel.Vector, error) {
	return prom.QueryInstant(ctx, q.clientSets, query)
}

// Collector fetches the four metric families for every known node and
// normalizes the raw series into row records, preserving backend order.
type Collector struct {
	querier Querier
}

func NewCollector(clientSets *clientsets.StorageClientSet) *Collector {
	return &Collector{querier: &promQuerier{clientSets: clientSets}}
}

func NewCollectorWithQuerier(querier Querier) *Collector {
	return &Collector{querier: querier}
}

// Collect builds one full snapshot. Any family failure aborts the whole
// collection; no partial snapshot is returned.
func (c *Collector) Collect(ctx context.Context) (*ReportData, error) {
	nodes, err := c.ListNodes(ctx)
	if err != nil {
		return nil, err
	}
	log.Infof("Collector: discovered %d nodes", len(nodes))

	data := &ReportData{
		Nodes:       nodes,
		GeneratedAt: time.Now(),
	}

	for _, node := range nodes {
		disks, err := c.CollectDisk(ctx, node)
		if err != nil {
			return nil, err
		}
		data.Disks = append(data.Disks, disks...)

		cpus, err := c.CollectCPU(ctx, node)
		if err != nil {
			return nil, err
		}
		data.Cpus = append(data.Cpus, cpus...)

		mems, err := c.CollectMemory(ctx, node)
		if err != nil {
			return nil, err
		}
		data.Mems = append(data.Mems, mems...)

		nets, err := c.CollectNetwork(ctx, node)
		if err != nil {
			return nil, err
		}
		data.Nets = append(data.Nets, nets...)
	}

	log.Infof("Collector: collected %d disk, %d cpu, %d memory, %d network records",
		len(data.Disks), len(data.Cpus), len(data.Mems), len(data.Nets))
	return data, nil
}

// ListNodes discovers the fleet from node_uname_info instance labels.
func (c *Collector) ListNodes(ctx context.Context) ([]string, error) {
	result, err := c.querier.Instant(ctx, nodeListQuery)
	if err != nil {
		return nil, err
	}
	nodes := make([]string, 0, len(result))
	for _, sample := range result {
		nodes = append(nodes, string(sample.Metric["instance"]))
	}
	return nodes, nil
}

// CollectDisk queries filesystem size and free bytes for one node and pairs
// the two series positionally into per-device rows.
func (c *Collector) CollectDisk(ctx context.Context, instance string) ([]DiskUsage, error) {
	sizes, err := c.querier.Instant(ctx, fmt.Sprintf(diskSizeQuery, instance))
	if err != nil {
		return nil, err
	}
	frees, err := c.querier.Instant(ctx, fmt.Sprintf(diskFreeQuery, instance))
	if err != nil {
		return nil, err
	}
	return normalizeDisk(instance, sizes, frees), nil
}

func normalizeDisk(instance string, sizes, frees promModel.Vector) []DiskUsage {
	n := len(sizes)
	if len(frees) < n {
		n = len(frees)
	}
	records := make([]DiskUsage, 0, n)
	for i := 0; i < n; i++ {
		sizeValue := float64(sizes[i].Value)
		freeValue := float64(frees[i].Value)
		usedValue := sizeValue - freeValue
		usagePercent := 0.0
		if sizeValue > 0 {
			usagePercent = usedValue / sizeValue * 100
		}
		records = append(records, DiskUsage{
			Instance:     instance,
			Device:       string(sizes[i].Metric["device"]),
			MountPoint:   string(sizes[i].Metric["mountpoint"]),
			Size:         FormatBytes(sizeValue),
			Used:         FormatBytes(usedValue),
			Free:         FormatBytes(freeValue),
			UsagePercent: usagePercent,
		})
	}
	return records
}

// CollectCPU queries idle-derived usage and core count for one node.
func (c *Collector) CollectCPU(ctx context.Context, instance string) ([]CpuUsage, error) {
	usages, err := c.querier.Instant(ctx, fmt.Sprintf(cpuUsageQuery, instance))
	if err != nil {
		return nil, err
	}
	cores, err := c.querier.Instant(ctx, fmt.Sprintf(cpuCoreNumQuery, instance))
	if err != nil {
		return nil, err
	}
	return normalizeCPU(instance, usages, cores), nil
}

func normalizeCPU(instance string, usages, cores promModel.Vector) []CpuUsage {
	n := len(usages)
	if len(cores) < n {
		n = len(cores)
	}
	records := make([]CpuUsage, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, CpuUsage{
			Instance:     instance,
			CoreNum:      int(float64(cores[i].Value)),
			UsagePercent: float64(usages[i].Value),
		})
	}
	return records
}

// CollectMemory queries total and available memory for one node.
func (c *Collector) CollectMemory(ctx context.Context, instance string) ([]MemoryUsage, error) {
	totals, err := c.querier.Instant(ctx, fmt.Sprintf(memTotalQuery, instance))
	if err != nil {
		return nil, err
	}
	avails, err := c.querier.Instant(ctx, fmt.Sprintf(memAvailQuery, instance))
	if err != nil {
		return nil, err
	}
	return normalizeMemory(instance, totals, avails), nil
}

func normalizeMemory(instance string, totals, avails promModel.Vector) []MemoryUsage {
	n := len(totals)
	if len(avails) < n {
		n = len(avails)
	}
	records := make([]MemoryUsage, 0, n)
	for i := 0; i < n; i++ {
		totalValue := float64(totals[i].Value)
		usedValue := totalValue - float64(avails[i].Value)
		usagePercent := 0.0
		if totalValue > 0 {
			usagePercent = usedValue / totalValue * 100
		}
		records = append(records, MemoryUsage{
			Instance:     instance,
			Total:        FormatBytes(totalValue),
			Used:         FormatBytes(usedValue),
			UsagePercent: usagePercent,
		})
	}
	return records
}

// CollectNetwork queries peak receive/transmit rates for one node.
func (c *Collector) CollectNetwork(ctx context.Context, instance string) ([]NetworkThroughput, error) {
	downloads, err := c.querier.Instant(ctx, fmt.Sprintf(netDownloadQuery, instance))
	if err != nil {
		return nil, err
	}
	uploads, err := c.querier.Instant(ctx, fmt.Sprintf(netUploadQuery, instance))
	if err != nil {
		return nil, err
	}
	return normalizeNetwork(instance, downloads, uploads), nil
}

func normalizeNetwork(instance string, downloads, uploads promModel.Vector) []NetworkThroughput {
	n := len(downloads)
	if len(uploads) < n {
		n = len(uploads)
	}
	records := make([]NetworkThroughput, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, NetworkThroughput{
			Instance: instance,
			Download: FormatBitsPerSecond(float64(downloads[i].Value)),
			Upload:   FormatBitsPerSecond(float64(uploads[i].Value)),
		})
	}
	return records
}
