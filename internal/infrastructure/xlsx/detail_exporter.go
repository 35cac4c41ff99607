// Package xlsx exporta el tablero filtrado a una planilla Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain"
)

// Hojas del libro.
const (
	SheetDetalle = "Detalle"
	SheetResumen = "Resumen"
)

// formato numérico 4 de Excel: #,##0.00
const numFmtMonto = 4

var detalleHeader = []any{
	"Fecha emisión", "Serie", "Correlativo", "Tipo documento", "Código tipo", "Razón social",
	"RUC cliente", "Dirección", "Moneda", "Subtotal", "IGV", "Valor venta", "Total", "Fecha registro", "ID",
}

var _ analytics.DetailExporter = (*ExcelizeExporter)(nil)

// ExcelizeExporter implementa analytics.DetailExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportDetail escribe la hoja Detalle (orden del tablero: fecha de emisión descendente)
// y la hoja Resumen con métricas, totales por tipo y top de clientes.
func (e *ExcelizeExporter) ExportDetail(_ context.Context, report *dto.DashboardDTO) ([]byte, error) {
	if report == nil || report.Resumen == nil {
		return nil, domain.ErrSinDatos
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetDetalle); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetResumen); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeDetalle(f, st, report.Detalle); err != nil {
		return nil, fmt.Errorf("xlsx: detalle: %w", err)
	}
	if err := writeResumen(f, st, report); err != nil {
		return nil, fmt.Errorf("xlsx: resumen: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	header int
	monto  int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return styles{}, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	monto, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMonto})
	if err != nil {
		return styles{}, fmt.Errorf("xlsx: estilo monto: %w", err)
	}
	return styles{header: header, monto: monto}, nil
}

func writeDetalle(f *excelize.File, st styles, ventas []dto.VentaDTO) error {
	if err := writeHeader(f, st, SheetDetalle, 1, detalleHeader); err != nil {
		return err
	}
	for i, v := range ventas {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		tipo := ""
		if v.TipoDocumento != nil {
			tipo = *v.TipoDocumento
		}
		row := []any{
			v.FechaEmision, v.Serie, v.Correlativo, tipo, v.CodigoTipoDocumento, v.RazonSocial,
			v.RUCCliente, v.Direccion, v.TipoMoneda,
			nullable(v.Subtotal), nullable(v.IGV), nullable(v.ValorVenta), nullable(v.Total),
			v.FechaRegistro, v.ID,
		}
		if err := f.SetSheetRow(SheetDetalle, cell, &row); err != nil {
			return err
		}
	}
	if len(ventas) > 0 {
		last, _ := excelize.CoordinatesToCellName(13, len(ventas)+1)
		if err := f.SetCellStyle(SheetDetalle, "J2", last, st.monto); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetDetalle, "A", "I", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetDetalle, "F", "F", 40); err != nil {
		return err
	}
	return f.SetPanes(SheetDetalle, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
}

func writeResumen(f *excelize.File, st styles, report *dto.DashboardDTO) error {
	r := report.Resumen
	rows := [][]any{
		{"Total ventas", r.TotalVentas.InexactFloat64()},
		{"Transacciones", r.Transacciones},
		{"Promedio por venta", r.PromedioVenta.InexactFloat64()},
		{"Tipo seleccionado", report.Filtros.TipoSeleccionado},
	}
	if len(report.Filtros.RangoAplicado) == 2 {
		rows = append(rows, []any{"Rango", report.Filtros.RangoAplicado[0] + " a " + report.Filtros.RangoAplicado[1]})
	}
	n := 1
	for _, row := range rows {
		if err := setRow(f, SheetResumen, n, row); err != nil {
			return err
		}
		n++
	}
	for _, cell := range []string{"B1", "B3"} {
		if err := f.SetCellStyle(SheetResumen, cell, cell, st.monto); err != nil {
			return err
		}
	}

	n++
	if err := writeHeader(f, st, SheetResumen, n, []any{"Tipo documento", "Cantidad", "Total", "Promedio", "Valor venta"}); err != nil {
		return err
	}
	for _, s := range report.PorTipoDocumento {
		n++
		row := []any{s.TipoDocumento, s.Cantidad, s.TotalVentas.InexactFloat64(), s.PromedioVenta.InexactFloat64(), s.ValorVenta.InexactFloat64()}
		if err := setRow(f, SheetResumen, n, row); err != nil {
			return err
		}
		if err := styleRange(f, SheetResumen, 3, 5, n, st.monto); err != nil {
			return err
		}
	}

	n += 2
	if err := writeHeader(f, st, SheetResumen, n, []any{"Razón social", "RUC", "Total"}); err != nil {
		return err
	}
	for _, c := range report.TopClientes {
		n++
		if err := setRow(f, SheetResumen, n, []any{c.RazonSocial, c.RUCCliente, c.Total.InexactFloat64()}); err != nil {
			return err
		}
		if err := styleRange(f, SheetResumen, 3, 3, n, st.monto); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetResumen, "A", "A", 40)
}

func writeHeader(f *excelize.File, st styles, sheet string, rowNum int, labels []any) error {
	if err := setRow(f, sheet, rowNum, labels); err != nil {
		return err
	}
	return styleRange(f, sheet, 1, len(labels), rowNum, st.header)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleRange(f *excelize.File, sheet string, fromCol, toCol, rowNum, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, rowNum)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

// nullable: NULL queda como celda vacía, no como 0.
func nullable(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}
