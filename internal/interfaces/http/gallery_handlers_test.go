package http_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gallery-api/internal/application/dto"
	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/pkg/config"
)

// Imagen mínima en data URI para las subidas de prueba.
const testImageDataURI = "data:image/jpeg;base64,aG9sYS1nYWxlcmlh"

func seedTemplate(t *testing.T, f *fixture, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := f.templates.Upsert(&entity.Template{
		TemplateID: id,
		Name:       "Base",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: Admin crea "Nature" referenciando la plantilla t-1.
func TestCreateCategory_ConPlantillaExistente(t *testing.T) {
	f := newFixture(t, defaultEndpoints())
	seedTemplate(t, f, "t-1")

	resp := doJSON(t, f.app, http.MethodPost, "/api/categories/", bearerFor(t, "Admin"), fiber.Map{
		"name":        "Nature",
		"description": "Outdoor photos",
		"templateId":  "t-1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assertCORS(t, resp)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["categoryId"], "el id se genera en el servidor")
	assert.Equal(t, "t-1", body["templateId"])
	assert.Equal(t, "Nature", body["name"])
	assert.Equal(t, "Outdoor photos", body["description"])
	assert.Equal(t, "Category created successfully", body["message"])
}

// La precondición corre antes de la escritura: plantilla inexistente = 404 y
// la tabla de categorías queda intacta.
func TestCreateCategory_PlantillaInexistente_404SinEscritura(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	resp := doJSON(t, f.app, http.MethodPost, "/api/categories/", bearerFor(t, "Admin"), fiber.Map{
		"name":       "Nature",
		"templateId": "no-existe",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Template not found", body["error"])

	list, _ := f.categories.List()
	assert.Empty(t, list, "el 404 de precondición no debe escribir la categoría")
}

// Sin templateId la precondición no aplica.
func TestCreateCategory_SinPlantilla(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	resp := doJSON(t, f.app, http.MethodPost, "/api/categories/", bearerFor(t, "Admin"), fiber.Map{
		"name":        "Abstract",
		"description": "Sin plantilla",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotContains(t, body, "templateId", "templateId vacío se omite en la respuesta")
}

func TestGetCategories_PublicoSinToken(t *testing.T) {
	f := newFixture(t, defaultEndpoints())
	seedTemplate(t, f, "t-1")

	resp := doJSON(t, f.app, http.MethodPost, "/api/categories/", bearerFor(t, "Admin"), fiber.Map{
		"name": "Nature", "templateId": "t-1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodGet, "/api/categories/", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "el listado de categorías es público")
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Nature", list[0]["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Plantillas (upsert)
// ──────────────────────────────────────────────────────────────────────────────

// Con id del llamador: 200 las dos veces, createdAt intacto, updatedAt avanza.
func TestUpsertTemplate_ConID_Idempotente(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	payload := fiber.Map{
		"templateId":  "t-42",
		"name":        "Ficha técnica",
		"description": "Campos de la ficha",
		"fields":      fiber.Map{"title": "string", "iso": "number"},
	}

	resp := doJSON(t, f.app, http.MethodPost, "/api/templates/", bearerFor(t, "Admin"), payload)
	first := decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "upsert con id responde 200 aunque inserte")
	assert.Equal(t, "Template updated successfully", first["message"])

	time.Sleep(10 * time.Millisecond)

	resp = doJSON(t, f.app, http.MethodPost, "/api/templates/", bearerFor(t, "Admin"), payload)
	second := decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, first["templateId"], second["templateId"])
	assert.Equal(t, first["name"], second["name"])
	assert.Equal(t, first["fields"], second["fields"])
	assert.Equal(t, first["createdAt"], second["createdAt"], "createdAt se preserva entre upserts")
	assert.NotEqual(t, first["updatedAt"], second["updatedAt"], "updatedAt cambia en cada escritura")
}

// Sin id: cada llamada crea un registro nuevo con 201.
func TestUpsertTemplate_SinID_SiempreCrea(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	payload := fiber.Map{"name": "Suelta", "fields": fiber.Map{"k": "v"}}

	resp := doJSON(t, f.app, http.MethodPost, "/api/templates/", bearerFor(t, "Admin"), payload)
	first := decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Template created successfully", first["message"])

	resp = doJSON(t, f.app, http.MethodPost, "/api/templates/", bearerFor(t, "Admin"), payload)
	second := decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NotEqual(t, first["templateId"], second["templateId"],
		"sin id cada upsert genera un registro distinto")

	list, _ := f.templates.List()
	assert.Len(t, list, 2)
}

func TestGetTemplateByID(t *testing.T) {
	f := newFixture(t, defaultEndpoints())
	seedTemplate(t, f, "t-1")

	resp := doJSON(t, f.app, http.MethodGet, "/api/templates/t-1", "", nil)
	body := decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "t-1", body["templateId"])

	resp = doJSON(t, f.app, http.MethodGet, "/api/templates/no-existe", "", nil)
	body = decodeMap(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Template not found", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Media
// ──────────────────────────────────────────────────────────────────────────────

func uploadMedia(t *testing.T, f *fixture, auth, categoryID string) map[string]any {
	t.Helper()
	resp := doJSON(t, f.app, http.MethodPost, "/api/media/", auth, dto.UploadMediaRequest{
		Image:      testImageDataURI,
		CategoryID: categoryID,
		Metadata:   map[string]any{"title": "Atardecer", "camera": "X100V"},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeMap(t, resp)
}

// La clave del blob se deriva de (categoryId, mediaId) y la escritura va en
// orden blob → registro.
func TestUploadMedia_ClaveYOrdenDeEscritura(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	body := uploadMedia(t, f, bearerFor(t, "Users"), "c-1")
	mediaID, _ := body["mediaId"].(string)
	require.NotEmpty(t, mediaID)
	assert.Equal(t, "Media uploaded successfully", body["message"])

	wantKey := "gallery-images/c-1/" + mediaID
	assert.True(t, f.blobs.has(wantKey), "el blob debe quedar bajo la clave derivada")

	items, _ := f.media.ListByCategory("c-1")
	require.Len(t, items, 1)
	assert.Equal(t, wantKey, items[0].S3Key)
	assert.Equal(t, testSubject, items[0].CreatedBy, "createdBy sale del sujeto del token")

	events := f.rec.all()
	require.Len(t, events, 2)
	assert.Equal(t, "blob:"+wantKey, events[0], "primero el blob")
	assert.Equal(t, "record:"+mediaID, events[1], "después el registro")
}

// Si la segunda escritura falla no hay rollback: 500 y blob huérfano
// (comportamiento documentado).
func TestUploadMedia_FalloDeRegistro_DejaBlobHuerfano(t *testing.T) {
	f := newFixture(t, defaultEndpoints())
	f.media.failCreate = assert.AnError

	resp := doJSON(t, f.app, http.MethodPost, "/api/media/", bearerFor(t, "Users"), dto.UploadMediaRequest{
		Image:      testImageDataURI,
		CategoryID: "c-1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["error"])

	events := f.rec.all()
	require.Len(t, events, 1)
	assert.True(t, strings.HasPrefix(events[0], "blob:"), "el blob queda escrito y sin registro")
}

func TestUploadMedia_GrupoNoPermitido_Retorna403(t *testing.T) {
	f := newFixture(t, defaultEndpoints())

	resp := doJSON(t, f.app, http.MethodPost, "/api/media/", bearerFor(t, "Viewers"), dto.UploadMediaRequest{
		Image:      testImageDataURI,
		CategoryID: "c-1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Access denied. Must be a member of Admin or Users group.", body["error"])
}

// Variante de despliegue sin autenticación: sube sin token y createdBy queda vacío.
func TestUploadMedia_VarianteSinAuth(t *testing.T) {
	f := newFixture(t, config.EndpointsConfig{UploadRequiresAuth: false})

	body := uploadMedia(t, f, "", "c-9")
	require.NotEmpty(t, body["mediaId"])

	items, _ := f.media.ListByCategory("c-9")
	require.Len(t, items, 1)
	assert.Empty(t, items[0].CreatedBy, "sin token no hay sujeto que registrar")
}

// Cada lectura genera URLs firmadas frescas; nunca se cachean.
func TestGetMediaByCategory_URLsFrescasPorLlamada(t *testing.T) {
	f := newFixture(t, defaultEndpoints())
	uploadMedia(t, f, bearerFor(t, "Admin"), "c-1")
	uploadMedia(t, f, bearerFor(t, "Admin"), "c-1")

	resp := doJSON(t, f.app, http.MethodGet, "/api/media/c-1", "", nil)
	first := decodeList(t, resp)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, first, 2)

	urls := map[string]bool{}
	for _, item := range first {
		mediaID, _ := item["mediaId"].(string)
		assert.Equal(t, "gallery-images/c-1/"+mediaID, item["s3Key"])
		assert.Equal(t, "Atardecer", item["title"], "metadata se aplana en el ítem")
		url, _ := item["signedUrl"].(string)
		assert.True(t, strings.HasPrefix(url, "https://"), "signedUrl debe ser una URL bien formada")
		urls[url] = true
	}
	assert.Len(t, urls, 2, "cada ítem lleva su propia URL firmada")

	resp = doJSON(t, f.app, http.MethodGet, "/api/media/c-1", "", nil)
	second := decodeList(t, resp)
	resp.Body.Close()
	for _, item := range second {
		url, _ := item["signedUrl"].(string)
		assert.False(t, urls[url], "la segunda lectura genera URLs nuevas, no cacheadas")
	}
}

// Variante de despliegue con lectura autenticada.
func TestGetMediaByCategory_VarianteConAuth(t *testing.T) {
	f := newFixture(t, config.EndpointsConfig{UploadRequiresAuth: true, MediaReadRequiresAuth: true})

	resp := doJSON(t, f.app, http.MethodGet, "/api/media/c-1", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "sin token la variante protegida rechaza")

	resp = doJSON(t, f.app, http.MethodGet, "/api/media/c-1", bearerFor(t), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "cualquier autenticado puede leer")
}
