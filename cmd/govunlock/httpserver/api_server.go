// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/govunlock/co"
)

// APIServerOptions configures the listener of the API handler.
type APIServerOptions struct {
	Timeout   time.Duration // request timeout, 0 means none
	BodyLimit int64         // request body limit in bytes, 0 means none
}

// StartAPIServer serves handler on addr. It returns the base URL and a func to close the server.
func StartAPIServer(addr string, handler http.Handler, opts APIServerOptions) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}

	if opts.BodyLimit > 0 {
		handler = requestBodyLimit(handler, opts.BodyLimit)
	}
	if opts.Timeout > 0 {
		handler = http.TimeoutHandler(handler, opts.Timeout, "request timeout")
	}

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/", func() {
		srv.Close()
		goes.Wait()
	}, nil
}

func requestBodyLimit(h http.Handler, limit int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		h.ServeHTTP(w, r)
	})
}
