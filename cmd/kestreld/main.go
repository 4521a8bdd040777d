// Copyright 2026 The Kestrel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command kestreld is a runnable example wiring two memtransport servers
// (one local, one cloud) through a manager.RequestManager, with a handful
// of sample routes registered on the dispatcher.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/common-nighthawk/go-figure"

	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/convert"
	"github.com/kestrel-edge/httpcore/dispatch"
	"github.com/kestrel-edge/httpcore/manager"
	"github.com/kestrel-edge/httpcore/memtransport"
	"github.com/kestrel-edge/httpcore/metrics"
	"github.com/kestrel-edge/httpcore/response"
	"github.com/kestrel-edge/httpcore/transport"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func main() {
	port := flag.Int("port", 8080, "local transport port")
	metricsPort := flag.Int("metrics-port", 9090, "Prometheus metrics port")
	flag.Parse()

	cli := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "kestreld",
	})

	figure.NewFigure("kestrel", "", true).Print()

	recorder := metrics.NewRecorder()
	d := dispatch.New(dispatch.WithMetrics(recorder))
	registerExampleRoutes(d)

	local := memtransport.New("local", transport.LocalServer)
	cloud := memtransport.New("cloud", transport.CloudServer)

	mgr := manager.New(local, cloud, d, manager.WithTickInterval(250*time.Millisecond))

	if !mgr.StartServer(*port) {
		cli.Fatal("primary transport failed to start")
	}
	cli.Info("transports started", "port", *port, "metrics_port", *metricsPort)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", recorder.Handler())
		cli.Error("metrics server exited", "error", http.ListenAndServe(":"+strconv.Itoa(*metricsPort), mux))
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go mgr.Run(ctx)

	<-ctx.Done()
	cli.Info("shutting down")
	mgr.StopServer()
}

func registerExampleRoutes(d *dispatch.Dispatcher) {
	_ = dispatch.Register(d, "GET", "/api/user/{userId}",
		func(body codec.Unit, vars *convert.Vars) (response.Response[user], error) {
			id, err := vars.String("userId")
			if err != nil {
				return response.Response[user]{}, err
			}
			return response.Ok(user{ID: id, Name: "user-" + id}), nil
		},
		codec.UnitSerializer(), codec.NewJSON[user](),
	)

	_ = dispatch.Register(d, "POST", "/api/users",
		func(body user, vars *convert.Vars) (response.Response[user], error) {
			return response.Created(body).WithHeader("Location", "/api/user/"+body.ID), nil
		},
		codec.NewJSON[user](), codec.NewJSON[user](),
	)
}
