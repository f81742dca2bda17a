package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConnectedSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "doubtlink", Name: "connected_sessions", Help: "Currently connected realtime sessions",
	})
	DroppedSessions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "doubtlink", Name: "dropped_sessions_total", Help: "Sessions dropped for slow or closed send buffers",
	})
	EventsBroadcast = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "doubtlink", Name: "events_broadcast_total", Help: "Events handed to the fan-out loop",
	}, []string{"event"})
	MessagesPersisted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "doubtlink", Name: "chat_messages_persisted_total", Help: "Chat messages written to the store",
	})
)

func init() {
	prometheus.MustRegister(ConnectedSessions, DroppedSessions, EventsBroadcast, MessagesPersisted)
}

func Handler() http.Handler { return promhttp.Handler() }
