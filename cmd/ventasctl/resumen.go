package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/pkg/moneda"
)

func newResumenCmd(f *filtros, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resumen",
		Short: "Imprime métricas, totales por tipo y top de clientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildServices(*logLevel)
			if err != nil {
				return err
			}
			defer svc.close()

			report := svc.dashboard.GetDashboard(cmd.Context(), f.request())
			conErrores := printAlertas(cmd.ErrOrStderr(), report.Alertas)
			if report.Resumen == nil {
				// Un filtro sin coincidencias no es un fallo; una conexión caída sí.
				if conErrores {
					return errors.New("la pasada terminó con errores")
				}
				return nil
			}
			printResumen(cmd.OutOrStdout(), report, svc.dashboard.Moneda())
			return nil
		},
	}
}

// printResumen escribe el tablero en columnas alineadas.
func printResumen(w io.Writer, r *dto.DashboardDTO, simbolo string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	rango := "todas"
	if len(r.Filtros.RangoAplicado) == 2 {
		rango = strings.Join(r.Filtros.RangoAplicado, " a ")
	}
	fmt.Fprintf(tw, "Tipo de documento:\t%s\n", r.Filtros.TipoSeleccionado)
	fmt.Fprintf(tw, "Fechas:\t%s\n", rango)
	fmt.Fprintf(tw, "Total ventas:\t%s\n", r.Resumen.TotalVentasTexto)
	fmt.Fprintf(tw, "Transacciones:\t%d\n", r.Resumen.Transacciones)
	fmt.Fprintf(tw, "Promedio por venta:\t%s\n", r.Resumen.PromedioTexto)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TIPO\tDOCS\tTOTAL\tPROMEDIO\tVALOR VENTA")
	for _, s := range r.PorTipoDocumento {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", s.TipoDocumento, s.Cantidad,
			moneda.Formatear(s.TotalVentas, simbolo),
			moneda.Formatear(s.PromedioVenta, simbolo),
			moneda.Formatear(s.ValorVenta, simbolo))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "#\tCLIENTE\tRUC\tTOTAL")
	for i, c := range r.TopClientes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, c.RazonSocial, c.RUCCliente, c.TotalTexto)
	}
}
