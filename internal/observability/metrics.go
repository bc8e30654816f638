package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	RecordsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "produtos_processados_total",
			Help: "Total de produtos estruturados",
		},
	)

	RecordErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "produtos_erro_total",
			Help: "Produtos que falharam e foram emitidos em modo degradado",
		},
	)

	CategoryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "produtos_categoria_total",
			Help: "Produtos por categoria base",
		},
		[]string{"categoria"},
	)

	BundlesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "produtos_bundle_total",
			Help: "Produtos identificados como bundle",
		},
	)

	ParseFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_falhas_total",
			Help: "Falhas de parsing por campo",
		},
		[]string{"campo"},
	)

	ClassifierResultTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classificador_resultado_total",
			Help: "Resultados do classificador semântico por desfecho",
		},
		[]string{"resultado"},
	)
)

// Start registers the collectors and serves /metrics on the given port.
func Start(port string) {
	prometheus.MustRegister(
		RecordsTotal,
		RecordErrorsTotal,
		CategoryTotal,
		BundlesTotal,
		ParseFailuresTotal,
		ClassifierResultTotal,
	)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			log.Error().Err(err).Str("port", port).Msg("[Metrics] servidor de métricas parou")
		}
	}()
}
