package postgres

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/domain/repository"
	"github.com/jhoicas/analisis-ventas/pkg/config"
)

// MsgErrorConexion prefijo de la alerta cuando no se puede abrir la conexión.
const MsgErrorConexion = "Error al conectar a la base de datos"

var _ analytics.Source = (*Provider)(nil)

// PoolFactory construye un pool listo para usar.
type PoolFactory func(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error)

// Provider entrega lectores del historial atados a un único pool por proceso.
//
// El pool se construye en el primer uso y queda memoizado solo si la conexión
// funcionó; un intento fallido no se guarda y la siguiente pasada vuelve a intentar.
// Dentro de una misma pasada no hay reintentos.
type Provider struct {
	cfg     config.DBConfig
	table   string
	newPool PoolFactory
	log     zerolog.Logger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewProvider construye el Provider; no abre conexiones.
func NewProvider(cfg config.DBConfig, table string, log zerolog.Logger) *Provider {
	return &Provider{cfg: cfg, table: table, newPool: NewPool, log: log}
}

// Pool devuelve el pool memoizado o lo construye. Llamadas concurrentes esperan a la
// misma construcción.
func (p *Provider) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}
	pool, err := p.newPool(ctx, p.cfg)
	if err != nil {
		return nil, err
	}
	// DATABASE_URL puede reemplazar host y base de cfg: se registra lo que usa el pool.
	conn := pool.Config().ConnConfig
	p.log.Info().Str("host", conn.Host).Uint16("port", conn.Port).Str("db", conn.Database).Msg("conexión a la base de datos lista")
	p.pool = pool
	return pool, nil
}

// Reader devuelve el lector del historial o nil si no hay conexión; el motivo queda
// reportado en rep.
func (p *Provider) Reader(ctx context.Context, rep alerts.Reporter) repository.InvoiceHistoryReader {
	pool, err := p.Pool(ctx)
	if err != nil {
		rep.Error(MsgErrorConexion, err)
		return nil
	}
	return NewInvoiceHistoryRepository(pool, p.table)
}

// Close cierra el pool si llegó a construirse.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}
