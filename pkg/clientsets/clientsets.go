package clientsets

import (
	"crypto/tls"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/api"

	"github.com/flipped-1121/prometheus-notice/pkg/config"
	"github.com/flipped-1121/prometheus-notice/pkg/errors"
)

// StorageClientSet bundles the clients for the metrics backend.
type StorageClientSet struct {
	PrometheusRead api.Client    // Prometheus HTTP API client
	Probe          *resty.Client // plain HTTP client for the reachability probe
	BaseURL        string
}

func InitStorageClients(cfg config.PrometheusConfig) (*StorageClientSet, error) {
	readClient, err := initPrometheusClient(cfg.URL)
	if err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("failed to initialize prometheus read client").
			WithError(err)
	}

	probe := resty.New()
	probe.SetTimeout(cfg.GetQueryTimeout())
	probe.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})

	return &StorageClientSet{
		PrometheusRead: readClient,
		Probe:          probe,
		BaseURL:        cfg.URL,
	}, nil
}

func initPrometheusClient(endpoint string) (api.Client, error) {
	promCfg := api.Config{
		Address: endpoint,
		Client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		},
	}
	return api.NewClient(promCfg)
}
