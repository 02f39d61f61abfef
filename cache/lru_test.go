// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLRU(t *testing.T) {
	_, err := NewLRU[string, int](0)
	assert.Error(t, err)

	c, err := NewLRU[string, int](2)
	require.NoError(t, err)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("a")
	assert.False(t, ok, "evicted")
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, hit, miss := c.Stats().Stats()
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(2), miss)
}

func TestGetOrLoad(t *testing.T) {
	c, err := NewLRU[int, string](10)
	require.NoError(t, err)

	var loads atomic.Int32
	loader := func(key int) (string, error) {
		loads.Add(1)
		if key < 0 {
			return "", errors.New("negative")
		}
		return "v", nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := c.GetOrLoad(1, loader)
			assert.NoError(t, err)
			assert.Equal(t, "v", v)
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, loads.Load(), int32(1))

	before := loads.Load()
	v, source, err := c.GetOrLoad(1, loader)
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Equal(t, FromCache, source)
	assert.Equal(t, before, loads.Load(), "served from cache")

	_, source, err = c.GetOrLoad(-1, loader)
	assert.EqualError(t, err, "negative")
	assert.Equal(t, Loaded, source)
	_, ok := c.Get(-1)
	assert.False(t, ok, "errors are not cached")
}

func TestGetOrLoadSource(t *testing.T) {
	c, err := NewLRU[int, string](10)
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	leader := make(chan Source, 1)
	go func() {
		_, source, err := c.GetOrLoad(1, func(int) (string, error) {
			close(entered)
			<-release
			return "v", nil
		})
		assert.NoError(t, err)
		leader <- source
	}()
	<-entered

	follower := make(chan Source, 1)
	go func() {
		v, source, err := c.GetOrLoad(1, func(int) (string, error) {
			return "", errors.New("must share the running load")
		})
		assert.NoError(t, err)
		assert.Equal(t, "v", v)
		follower <- source
	}()
	// let the follower join the running load
	time.Sleep(100 * time.Millisecond)
	close(release)

	assert.Equal(t, Loaded, <-leader)
	assert.Equal(t, Shared, <-follower)

	_, source, err := c.GetOrLoad(1, nil)
	require.NoError(t, err)
	assert.Equal(t, FromCache, source)
	assert.Equal(t, "shared", Shared.String())
}
