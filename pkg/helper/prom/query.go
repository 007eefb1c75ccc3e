package prom

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	promModel "github.com/prometheus/common/model"

	"github.com/flipped-1121/prometheus-notice/pkg/clientsets"
	"github.com/flipped-1121/prometheus-notice/pkg/errors"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/log"
)

// QueryInstant runs an instant vector query and returns the samples in
// backend order. An empty result is not an error.
func QueryInstant(ctx context.Context, clientSets *clientsets.StorageClientSet, query string) (promModel.Vector, error) {
	promAPI, err := getPromApi(clientSets)
	if err != nil {
		return nil, err
	}
	result, warnings, err := promAPI.Query(ctx, query, time.Now())
	if err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeQueryError).
			WithMessagef("prometheus query failed: %s", query).
			WithError(err)
	}
	if len(warnings) > 0 {
		log.Warnf("Prometheus query warnings for %s: %v", query, warnings)
	}
	vectorVal, ok := result.(promModel.Vector)
	if !ok || len(vectorVal) == 0 {
		log.Warnf("No data returned for query: %s", query)
		return promModel.Vector{}, nil
	}

	return vectorVal, nil
}

// Ping checks that the metrics backend is reachable before any query runs.
// A connection failure here classifies the run as backend-unreachable rather
// than a query error.
func Ping(ctx context.Context, clientSets *clientsets.StorageClientSet) error {
	resp, err := clientSets.Probe.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/-/healthy", clientSets.BaseURL))
	if err != nil {
		return errors.NewError().
			WithCode(errors.CodeBackendUnreachable).
			WithMessage("metrics backend is unreachable").
			WithError(err)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		// 404 means the endpoint does not expose the health handler; the
		// connection itself worked, so the backend counts as reachable.
		return errors.NewError().
			WithCode(errors.CodeBackendUnreachable).
			WithMessagef("metrics backend health check returned status %d", resp.StatusCode())
	}
	return nil
}

func getPromApi(clientSets *clientsets.StorageClientSet) (v1.API, error) {
	if clientSets == nil || clientSets.PrometheusRead == nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("prometheus client is not initialized")
	}
	return v1.NewAPI(clientSets.PrometheusRead), nil
}
