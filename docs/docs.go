// Package docs expone la especificación OpenAPI del servicio (swag).
// swagger.json es la fuente; la UI en /docs la sirve gofiber/contrib/swagger.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo metadatos de la API; Host y BasePath se pueden ajustar al arrancar.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Análisis de Ventas API",
	Description:      "Tablero de ventas sobre el historial de numeración (facturas y boletas).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
