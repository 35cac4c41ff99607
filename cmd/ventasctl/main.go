// Command ventasctl corre el tablero de ventas desde la terminal: imprime el resumen
// o exporta el conjunto filtrado a PDF/XLSX.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
