package stream

import "time"

const (
	// Registro de conexão de stream: stream:conn:{connection_id} -> hash
	KeyConnection = "stream:conn:%s"

	// Conjunto de conexões por negócio: stream:conns:{business_id} -> set de ids
	KeyConnectionSet = "stream:conns:%s"

	// Cache de estatísticas do painel: dashboard:stats:{business_id}:{range}
	KeyDashboardStats = "dashboard:stats:%s:%s"
)

var (
	// TTLConnection é renovado a cada heartbeat; conexões sem heartbeat por
	// mais que esse período são consideradas mortas e recolhidas
	TTLConnection = 90 * time.Second

	// TTLDashboardStats limita a defasagem aceita das estatísticas do painel
	TTLDashboardStats = 60 * time.Second
)
