package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/domain"
)

func newExportarCmd(f *filtros, logLevel *string) *cobra.Command {
	var formato, salida string

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta el tablero filtrado a PDF o XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmto := analytics.Formato(formato)
			if fmto != analytics.FormatoPDF && fmto != analytics.FormatoXLSX {
				return fmt.Errorf("%w: %q (use pdf o xlsx)", domain.ErrFormatoExportacion, formato)
			}

			svc, err := buildServices(*logLevel)
			if err != nil {
				return err
			}
			defer svc.close()

			exp, err := svc.export.Exportar(cmd.Context(), fmto, f.request())
			if exp != nil {
				printAlertas(cmd.ErrOrStderr(), exp.Alertas)
			}
			if errors.Is(err, domain.ErrSinDatos) {
				return errors.New("no hay datos para exportar")
			}
			if err != nil {
				return err
			}

			path := salida
			if path == "" {
				path = exp.NombreArchivo
			}
			if err := os.WriteFile(path, exp.Contenido, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", path, len(exp.Contenido))
			return nil
		},
	}

	cmd.Flags().StringVar(&formato, "formato", string(analytics.FormatoPDF), "Formato de salida: pdf o xlsx")
	cmd.Flags().StringVarP(&salida, "salida", "o", "", "Archivo de salida (default ventas_<fecha>.<formato>)")
	return cmd
}
