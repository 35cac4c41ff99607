package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
)

// Las agregaciones siguen la semántica de un groupby sobre la columna total:
// los montos NULL no suman ni cuentan, y las filas sin clave de grupo se omiten.

// Resumen métricas generales de un conjunto.
type Resumen struct {
	TotalVentas   decimal.Decimal
	Transacciones int             // filas, tengan o no total
	PromedioVenta decimal.Decimal // promedio sobre los totales no nulos; 0 si no hay
}

// VentaDiaria suma de total para una fecha de emisión.
type VentaDiaria struct {
	Fecha time.Time
	Total decimal.Decimal
}

// EstadisticaTipo agregados por tipo de documento.
type EstadisticaTipo struct {
	TipoDocumento string
	TotalVentas   decimal.Decimal
	PromedioVenta decimal.Decimal
	Cantidad      int // totales no nulos
	ValorVenta    decimal.Decimal
}

// ClienteTotal monto acumulado por cliente (razón social + RUC).
type ClienteTotal struct {
	RazonSocial string
	RUCCliente  string
	Total       decimal.Decimal
}

type acumulador struct {
	suma     decimal.Decimal
	cantidad int
}

func (a *acumulador) agregar(d decimal.NullDecimal) {
	if !d.Valid {
		return
	}
	a.suma = a.suma.Add(d.Decimal)
	a.cantidad++
}

func (a acumulador) promedio() decimal.Decimal {
	if a.cantidad == 0 {
		return decimal.Zero
	}
	return a.suma.Div(decimal.NewFromInt(int64(a.cantidad)))
}

// CalcularResumen total, cantidad de transacciones y promedio por venta.
func CalcularResumen(ds *entity.Dataset) Resumen {
	var acc acumulador
	for _, v := range ds.Ventas() {
		acc.agregar(v.Total)
	}
	return Resumen{
		TotalVentas:   acc.suma,
		Transacciones: ds.Len(),
		PromedioVenta: acc.promedio(),
	}
}

// VentasPorDia suma de total por fecha de emisión, en orden ascendente.
func VentasPorDia(ds *entity.Dataset) []VentaDiaria {
	porDia := map[time.Time]*acumulador{}
	for _, v := range ds.Ventas() {
		acc, ok := porDia[v.FechaEmision]
		if !ok {
			acc = &acumulador{}
			porDia[v.FechaEmision] = acc
		}
		acc.agregar(v.Total)
	}

	serie := make([]VentaDiaria, 0, len(porDia))
	for fecha, acc := range porDia {
		serie = append(serie, VentaDiaria{Fecha: fecha, Total: acc.suma})
	}
	sort.Slice(serie, func(i, j int) bool { return serie[i].Fecha.Before(serie[j].Fecha) })
	return serie
}

// EstadisticasPorTipo suma, promedio y cantidad de total y suma de valor_venta por
// etiqueta de tipo de documento, ordenadas por etiqueta. Las filas sin etiqueta no
// forman grupo.
func EstadisticasPorTipo(ds *entity.Dataset) []EstadisticaTipo {
	type grupo struct {
		total      acumulador
		valorVenta acumulador
	}
	grupos := map[string]*grupo{}
	for _, v := range ds.Ventas() {
		if v.TipoDocumento == nil {
			continue
		}
		g, ok := grupos[*v.TipoDocumento]
		if !ok {
			g = &grupo{}
			grupos[*v.TipoDocumento] = g
		}
		g.total.agregar(v.Total)
		g.valorVenta.agregar(v.ValorVenta)
	}

	stats := make([]EstadisticaTipo, 0, len(grupos))
	for tipo, g := range grupos {
		stats = append(stats, EstadisticaTipo{
			TipoDocumento: tipo,
			TotalVentas:   g.total.suma,
			PromedioVenta: g.total.promedio(),
			Cantidad:      g.total.cantidad,
			ValorVenta:    g.valorVenta.suma,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].TipoDocumento < stats[j].TipoDocumento })
	return stats
}

// TopClientes los n clientes con mayor suma de total. Empates se ordenan por razón
// social y RUC. Filas con razón social o RUC NULL no forman grupo; el texto vacío sí.
func TopClientes(ds *entity.Dataset, n int) []ClienteTotal {
	type clave struct{ razonSocial, ruc string }
	grupos := map[clave]*acumulador{}
	for _, v := range ds.Ventas() {
		if v.ClienteNulo {
			continue
		}
		k := clave{v.RazonSocial, v.RUCCliente}
		acc, ok := grupos[k]
		if !ok {
			acc = &acumulador{}
			grupos[k] = acc
		}
		acc.agregar(v.Total)
	}

	clientes := make([]ClienteTotal, 0, len(grupos))
	for k, acc := range grupos {
		clientes = append(clientes, ClienteTotal{RazonSocial: k.razonSocial, RUCCliente: k.ruc, Total: acc.suma})
	}
	sort.Slice(clientes, func(i, j int) bool {
		a, b := clientes[i], clientes[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		if a.RazonSocial != b.RazonSocial {
			return a.RazonSocial < b.RazonSocial
		}
		return a.RUCCliente < b.RUCCliente
	})
	if n >= 0 && len(clientes) > n {
		clientes = clientes[:n]
	}
	return clientes
}

// TiposPresentes etiquetas de tipo de documento presentes, ordenadas y sin repetir.
func TiposPresentes(ds *entity.Dataset) []string {
	vistos := map[string]struct{}{}
	for _, v := range ds.Ventas() {
		if v.TipoDocumento != nil {
			vistos[*v.TipoDocumento] = struct{}{}
		}
	}
	tipos := make([]string, 0, len(vistos))
	for t := range vistos {
		tipos = append(tipos, t)
	}
	sort.Strings(tipos)
	return tipos
}

// OrdenarPorFechaDesc copia de las filas ordenada por fecha de emisión descendente.
// Filas de la misma fecha conservan el orden de carga.
func OrdenarPorFechaDesc(ds *entity.Dataset) []entity.Venta {
	filas := append([]entity.Venta(nil), ds.Ventas()...)
	sort.SliceStable(filas, func(i, j int) bool { return filas[i].FechaEmision.After(filas[j].FechaEmision) })
	return filas
}
