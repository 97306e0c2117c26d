package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"geo-lookup-server/commons"
	"geo-lookup-server/db"
	"geo-lookup-server/geodata"
	"geo-lookup-server/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetJSON = `[
  {"id": 1, "name": "Afghanistan", "iso2": "AF", "states": [
    {"id": 101, "name": "Badakhshan", "cities": [{"id": 5001, "name": "Fayzabad"}]}
  ]}
]`

func fileConfig(t *testing.T, name, content string) *commons.Config {
	t.Helper()
	cfg := &commons.Config{}
	cfg.Dataset.Path = filepath.Join(t.TempDir(), name)
	cfg.Dataset.Format = "auto"
	require.NoError(t, os.WriteFile(cfg.Dataset.Path, []byte(content), 0o644))
	return cfg
}

func startServer(t *testing.T, idx *geodata.Index) *echo.Echo {
	t.Helper()
	recorder, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)
	return newServer(&commons.Config{}, idx, recorder)
}

func request(e *echo.Echo, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoadIndexFromJSONFile(t *testing.T) {
	idx := loadIndex(fileConfig(t, "countries+states+cities.json", datasetJSON))

	require.True(t, idx.Available())
	assert.Equal(t, geodata.Stats{Countries: 1, States: 1, Cities: 1}, idx.Stats())
}

func TestLoadIndexFromYAMLFile(t *testing.T) {
	yamlDataset := "- id: 1\n  name: Afghanistan\n  states: []\n"
	idx := loadIndex(fileConfig(t, "countries.yaml", yamlDataset))

	require.True(t, idx.Available())
	assert.Equal(t, 1, idx.Stats().Countries)
}

func TestLoadIndexFailuresLeaveIndexUnavailable(t *testing.T) {
	cases := map[string]*commons.Config{
		"not a sequence": fileConfig(t, "object.json", `{"countries": []}`),
		"corrupt":        fileConfig(t, "corrupt.json", `[{"id": 1,`),
	}
	missing := &commons.Config{}
	missing.Dataset.Path = filepath.Join(t.TempDir(), "absent.json")
	cases["missing"] = missing

	for label, cfg := range cases {
		t.Run(label, func(t *testing.T) {
			idx := loadIndex(cfg)
			assert.False(t, idx.Available())
			assert.ErrorIs(t, idx.Err(), geodata.ErrDatasetLoad)
		})
	}
}

func TestLoadIndexFromDatabase(t *testing.T) {
	cfg := &commons.Config{}
	cfg.Dataset.Format = formatDB
	cfg.DB = commons.DBConfig{Dialect: "sqlite", Path: filepath.Join(t.TempDir(), "geo.db")}

	conn, _, err := db.Open(cfg.DB)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	countries, err := geodata.DecodeJSON([]byte(datasetJSON))
	require.NoError(t, err)
	_, err = db.ImportDataset(conn, countries)
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	idx := loadIndex(cfg)
	require.True(t, idx.Available())

	cities, err := idx.ListCities(101)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Fayzabad", *cities[0].Name)
}

func TestLoadIndexFromDatabaseWithoutDSN(t *testing.T) {
	cfg := &commons.Config{}
	cfg.Dataset.Format = formatDB
	cfg.DB.Dialect = "postgres"

	idx := loadIndex(cfg)
	assert.False(t, idx.Available())
	assert.ErrorIs(t, idx.Err(), geodata.ErrDatasetLoad)
}

func TestServerAllowsAnyOrigin(t *testing.T) {
	e := startServer(t, loadIndex(fileConfig(t, "data.json", datasetJSON)))

	rec := request(e, "/countries", map[string]string{echo.HeaderOrigin: "https://client.example"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = request(e, "/states/abc", map[string]string{echo.HeaderOrigin: "https://client.example"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServerRevalidatesWithETag(t *testing.T) {
	e := startServer(t, loadIndex(fileConfig(t, "data.json", datasetJSON)))

	first := request(e, "/states/1", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.NotEmpty(t, first.Header().Get(echo.HeaderXRequestID))

	second := request(e, "/states/1", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, second.Code)
}

func TestServerNotFoundCarriesNoETag(t *testing.T) {
	e := startServer(t, loadIndex(fileConfig(t, "data.json", datasetJSON)))

	ok := request(e, "/states/1", nil)
	require.Equal(t, http.StatusOK, ok.Code)
	etag := ok.Header().Get("ETag")
	require.NotEmpty(t, etag)

	for _, ifNoneMatch := range []string{"", "*", etag} {
		header := map[string]string{}
		if ifNoneMatch != "" {
			header["If-None-Match"] = ifNoneMatch
		}
		rec := request(e, "/states/999", header)
		assert.Equal(t, http.StatusNotFound, rec.Code, "If-None-Match %q", ifNoneMatch)
		assert.Empty(t, rec.Header().Get("ETag"), "If-None-Match %q", ifNoneMatch)
		assert.JSONEq(t, `{"message":"Country or states not found"}`, rec.Body.String())
	}

	rec := request(e, "/states/1", map[string]string{"If-None-Match": "*"})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServerWithUnavailableDataset(t *testing.T) {
	missing := &commons.Config{}
	missing.Dataset.Path = filepath.Join(t.TempDir(), "absent.json")
	e := startServer(t, loadIndex(missing))

	rec := request(e, "/countries", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Countries data not found"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("ETag"))

	rec = request(e, "/cities/101", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"State or cities not found"}`, rec.Body.String())

	rec = request(e, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API is running...", rec.Body.String())
}

func TestServerExposesMetrics(t *testing.T) {
	e := startServer(t, loadIndex(fileConfig(t, "data.json", datasetJSON)))
	request(e, "/cities/101", nil)

	rec := request(e, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `geo_lookups_total{operation="cities",result="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "geo_dataset_available 1")
	assert.Contains(t, rec.Body.String(), `geo_dataset_records{kind="cities"} 1`)
}
