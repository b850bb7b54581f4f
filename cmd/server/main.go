package main

import (
	"flag"
	"log"
	"net/http"

	"gridnav/pkg/engine/pathfinding"
	"gridnav/pkg/server/rest"
	"gridnav/pkg/server/rest/service"

	_ "net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
)

//	@title			gridnav API
//	@version		1.0
//	@description	A* shortest path queries over 2D grids with solid cells

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	engine := pathfinding.NewEngine()
	pathfindingSvc := service.NewPathfindingService(engine)
	rest.PathfindingRouter(r, pathfindingSvc, m)

	log.Printf("server started at %s", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
