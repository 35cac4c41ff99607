// Package analytics contiene el flujo del tablero de ventas: carga y limpieza del
// historial, filtros del usuario y agregaciones para la capa de presentación.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/internal/domain/repository"
	"github.com/jhoicas/analisis-ventas/pkg/fechas"
	"github.com/jhoicas/analisis-ventas/pkg/moneda"
)

// Mensajes de fin temprano de la pasada.
const (
	MsgSinDatos         = "No se encontraron datos válidos de ventas."
	MsgSinCoincidencias = "No hay datos que coincidan con los filtros seleccionados."
)

// Source entrega el lector del historial, o nil si no hay conexión utilizable
// (el motivo ya quedó reportado en rep).
type Source interface {
	Reader(ctx context.Context, rep alerts.Reporter) repository.InvoiceHistoryReader
}

// DashboardConfig parámetros de presentación del tablero.
type DashboardConfig struct {
	TopClientes  int
	Moneda       string
	QueryTimeout time.Duration // 0 = sin límite propio
}

// DashboardUseCase ejecuta una pasada completa del tablero:
//
//	Source → Loader (conjunto completo) → Filtrar (conjunto filtrado) → agregaciones
//
// Cada llamada es independiente; lo único compartido entre pasadas es la conexión
// que memoiza el Source.
type DashboardUseCase struct {
	source Source
	loader *Loader
	cfg    DashboardConfig
	log    zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source Source, loader *Loader, cfg DashboardConfig, log zerolog.Logger) *DashboardUseCase {
	if cfg.TopClientes <= 0 {
		cfg.TopClientes = 10
	}
	return &DashboardUseCase{source: source, loader: loader, cfg: cfg, log: log}
}

// Pasada resultado de una ejecución: ambos conjuntos y las alertas generadas.
type Pasada struct {
	ID        string
	Criterios Criterios
	Completo  *entity.Dataset
	Filtrado  *entity.Dataset
	Alertas   []alerts.Alert
}

// Ejecutar corre la pasada con los criterios dados. Nunca devuelve error: los fallos
// terminan la pasada con conjuntos vacíos y quedan en Alertas.
func (uc *DashboardUseCase) Ejecutar(ctx context.Context, c Criterios) *Pasada {
	id := uuid.NewString()
	log := uc.log.With().Str("pasada_id", id).Logger()
	rep := alerts.NewCollector(log)

	if uc.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.QueryTimeout)
		defer cancel()
	}

	p := &Pasada{ID: id, Criterios: c, Filtrado: entity.EmptyDataset()}

	p.Completo = uc.loader.Load(ctx, uc.source.Reader(ctx, rep), rep)
	if p.Completo.Empty() {
		rep.Warning(MsgSinDatos)
		p.Alertas = rep.Alerts()
		return p
	}

	p.Filtrado = Filtrar(p.Completo, c, rep)
	if p.Filtrado.Empty() {
		rep.Warning(MsgSinCoincidencias)
	}

	log.Info().
		Int("filas", p.Completo.Len()).
		Int("filas_filtradas", p.Filtrado.Len()).
		Str("tipo_documento", c.TipoDocumento).
		Strs("fechas", c.Fechas).
		Bool("con_errores", rep.HasErrors()).
		Msg("pasada del tablero")

	p.Alertas = rep.Alerts()
	return p
}

// GetDashboard ejecuta la pasada y construye la respuesta completa.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, req dto.DashboardRequest) *dto.DashboardDTO {
	return uc.BuildDashboard(uc.Ejecutar(ctx, criteriosDe(req)))
}

// GetDetalle ejecuta la pasada y devuelve una página de la tabla de detalle.
func (uc *DashboardUseCase) GetDetalle(ctx context.Context, req dto.DetalleRequest) *dto.DetalleDTO {
	req.DefaultPage()
	p := uc.Ejecutar(ctx, criteriosDe(req.DashboardRequest))

	filas := OrdenarPorFechaDesc(p.Filtrado)
	total := len(filas)
	desde := min(req.Offset, total)
	hasta := min(desde+req.Limit, total)

	return &dto.DetalleDTO{
		PasadaID: p.ID,
		Items:    ventasDTO(filas[desde:hasta]),
		Page:     dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: total},
		Alertas:  p.Alertas,
	}
}

// BuildDashboard convierte una pasada en DashboardDTO. Sin datos en el conjunto
// filtrado no se calculan agregados (Resumen queda nil).
func (uc *DashboardUseCase) BuildDashboard(p *Pasada) *dto.DashboardDTO {
	out := &dto.DashboardDTO{
		PasadaID:         p.ID,
		SinDatos:         p.Completo.Empty(),
		VentasPorDia:     []dto.VentaDiariaDTO{},
		PorTipoDocumento: []dto.TipoDocumentoStatsDTO{},
		TopClientes:      []dto.ClienteDTO{},
		Detalle:          []dto.VentaDTO{},
		Alertas:          p.Alertas,
	}

	tipoSel := p.Criterios.TipoDocumento
	if tipoSel == "" {
		tipoSel = TodosLosTipos
	}
	out.Filtros = dto.FiltrosDTO{
		TiposDocumento:   append([]string{TodosLosTipos}, TiposPresentes(p.Completo)...),
		TipoSeleccionado: tipoSel,
	}
	if minF, maxF, ok := p.Completo.RangoFechas(); ok {
		out.Filtros.FechaMin = fechas.Formatear(minF)
		out.Filtros.FechaMax = fechas.Formatear(maxF)
	}
	if p.Criterios.AplicaFechas() {
		out.Filtros.RangoAplicado = p.Criterios.Fechas
	}

	if p.Filtrado.Empty() {
		return out
	}

	r := CalcularResumen(p.Filtrado)
	out.Resumen = &dto.ResumenDTO{
		TotalVentas:      r.TotalVentas.Round(2),
		Transacciones:    r.Transacciones,
		PromedioVenta:    r.PromedioVenta.Round(2),
		TotalVentasTexto: moneda.Formatear(r.TotalVentas, uc.cfg.Moneda),
		PromedioTexto:    moneda.Formatear(r.PromedioVenta, uc.cfg.Moneda),
	}

	for _, d := range VentasPorDia(p.Filtrado) {
		out.VentasPorDia = append(out.VentasPorDia, dto.VentaDiariaDTO{
			Fecha: fechas.Formatear(d.Fecha),
			Total: d.Total.Round(2),
		})
	}
	for _, s := range EstadisticasPorTipo(p.Filtrado) {
		out.PorTipoDocumento = append(out.PorTipoDocumento, dto.TipoDocumentoStatsDTO{
			TipoDocumento: s.TipoDocumento,
			TotalVentas:   s.TotalVentas.Round(2),
			PromedioVenta: s.PromedioVenta.Round(2),
			Cantidad:      s.Cantidad,
			ValorVenta:    s.ValorVenta.Round(2),
		})
	}
	for _, c := range TopClientes(p.Filtrado, uc.cfg.TopClientes) {
		out.TopClientes = append(out.TopClientes, dto.ClienteDTO{
			RazonSocial: c.RazonSocial,
			RUCCliente:  c.RUCCliente,
			Total:       c.Total.Round(2),
			TotalTexto:  moneda.Formatear(c.Total, uc.cfg.Moneda),
		})
	}
	out.Detalle = ventasDTO(OrdenarPorFechaDesc(p.Filtrado))
	return out
}

// Moneda símbolo configurado para los montos.
func (uc *DashboardUseCase) Moneda() string { return uc.cfg.Moneda }

func criteriosDe(req dto.DashboardRequest) Criterios {
	return Criterios{TipoDocumento: req.TipoDocumento, Fechas: req.Fechas}
}

func ventasDTO(ventas []entity.Venta) []dto.VentaDTO {
	out := make([]dto.VentaDTO, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, dto.VentaDTO{
			ID:                  v.ID,
			Serie:               v.Serie,
			Correlativo:         v.Correlativo,
			FechaEmision:        fechas.Formatear(v.FechaEmision),
			FechaRegistro:       v.FechaRegistro,
			RazonSocial:         v.RazonSocial,
			RUCCliente:          v.RUCCliente,
			Direccion:           v.Direccion,
			TipoDocumento:       v.TipoDocumento,
			CodigoTipoDocumento: v.CodigoTipoDocumento,
			TipoMoneda:          v.TipoMoneda,
			Subtotal:            v.Subtotal,
			IGV:                 v.IGV,
			ValorVenta:          v.ValorVenta,
			Total:               v.Total,
		})
	}
	return out
}
