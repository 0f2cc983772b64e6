package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ruta del spec vista desde este paquete; en runtime main la sirve como ./docs/swagger.json.
const swaggerSpecPath = "../../docs/swagger.json"

// El middleware de swagger hace panic al construirse si el archivo del spec no
// existe, lo que tumbaría el proceso antes de Listen. Este test garantiza que
// docs/swagger.json viaja en el repo, es JSON válido y el middleware se monta.
func TestSwaggerSpec_ExisteYSeMonta(t *testing.T) {
	raw, err := os.ReadFile(swaggerSpecPath)
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repo")

	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &spec), "el spec debe ser JSON válido")
	assert.Equal(t, "2.0", spec["swagger"], "el spec debe declarar swagger 2.0")
	assert.Contains(t, spec, "paths")

	var app *fiber.App
	require.NotPanics(t, func() {
		app = fiber.New()
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpecPath,
			Path:     "docs",
			Title:    "MerchantHaus CRM API",
		}))
	}, "montar el middleware con el spec versionado no debe hacer panic")

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la UI de docs debe servirse")
}
