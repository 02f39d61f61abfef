// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	server := httptest.NewServer(HTTPHandler())
	t.Cleanup(server.Close)

	Counter("count1").Add(1)
	CounterVec("count_vec", []string{"result"}).AddWithLabel(1, map[string]string{"nonsense": "but doesn't break"})
	Gauge("gauge").Set(3)
	Histogram("hist", nil).Observe(1)
	HistogramVec("hist_vec", []string{"code"}, nil).ObserveWithLabels(1, nil)
	LazyLoadCounter("lazy")().Add(1)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
