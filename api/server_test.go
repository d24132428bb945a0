package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/klauspost/compress/gzip"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/logger"
	"github.com/stretchr/testify/require"
)

const body = `month,sales,note
2020-01,1,a
2020-02,2,b
2020-03,3,
2020-04,4,c
2020-05,5,d
`

func newTestServer(t *testing.T, maxUpload datasize.ByteSize) http.Handler {
	t.Helper()
	log := logger.NewLoggerTo(io.Discard, "critical", "api-test")
	a, err := analyzer.New(nil, log)
	require.NoError(t, err)
	return NewServer(a, log, maxUpload, nil).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, payload io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, payload)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, datasize.MB), http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestFamilies(t *testing.T) {
	h := newTestServer(t, datasize.MB)

	rec := do(t, h, http.MethodGet, "/families", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all["Continuous"], 10)
	require.Len(t, all["Discrete"], 6)

	rec = do(t, h, http.MethodGet, "/families?kind=discrete", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "Normal")

	rec = do(t, h, http.MethodGet, "/families?kind=mixed", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViews(t *testing.T) {
	rec := do(t, newTestServer(t, datasize.MB), http.MethodGet, "/views", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var views []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 9)
}

func TestDescribe(t *testing.T) {
	h := newTestServer(t, datasize.MB)

	rec := do(t, h, http.MethodPost, "/describe", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []analyzer.ColumnSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	require.Equal(t, 3.0, all[1].Stats.Mean)
	require.NotEmpty(t, all[2].Error)

	rec = do(t, h, http.MethodPost, "/describe?column=sales", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var one []analyzer.ColumnSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	require.Len(t, one, 1)
	require.Equal(t, 2.0, one[0].Stats.Variance)

	rec = do(t, h, http.MethodPost, "/describe?column=price", strings.NewReader(body), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid selection")
}

func TestDescribeCompressed(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	h := newTestServer(t, datasize.MB)
	rec := do(t, h, http.MethodPost, "/describe?column=sales", &buf, map[string]string{"Content-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/describe", strings.NewReader(body), map[string]string{"Content-Encoding": "br"})
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestDescribeDelimiter(t *testing.T) {
	h := newTestServer(t, datasize.MB)
	tsv := strings.ReplaceAll(body, ",", "\t")
	rec := do(t, h, http.MethodPost, "/describe?column=sales&delimiter=tab", strings.NewReader(tsv), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadLimit(t *testing.T) {
	h := newTestServer(t, 16*datasize.B)
	rec := do(t, h, http.MethodPost, "/describe", strings.NewReader(body), nil)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestDistribution(t *testing.T) {
	h := newTestServer(t, datasize.MB)

	rec := do(t, h, http.MethodPost, "/distribution?column=sales&family=Uniform", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rep analyzer.DistributionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	require.Equal(t, 4.0, rep.Curve.Accuracy)

	rec = do(t, h, http.MethodPost, "/distribution?column=sales&family=Zipf", strings.NewReader(body), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	zero := "x\n-1\n1\n"
	rec = do(t, h, http.MethodPost, "/distribution?column=x&family=Exponential", strings.NewReader(zero), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "division by zero")
}

func TestTimeSeries(t *testing.T) {
	h := newTestServer(t, datasize.MB)

	rec := do(t, h, http.MethodPost, "/timeseries?date=month&value=sales&view=Moving+Average", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"values":[null,null,null,null,3]`)
	require.Contains(t, rec.Body.String(), `"label":"Non-Stationary"`)

	rec = do(t, h, http.MethodPost, "/timeseries?date=month&value=sales&view=Spectrum", strings.NewReader(body), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	short := "d,v\na,1\n"
	rec = do(t, h, http.MethodPost, "/timeseries?date=d&value=v", strings.NewReader(short), nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCharts(t *testing.T) {
	h := newTestServer(t, datasize.MB)

	rec := do(t, h, http.MethodPost, "/timeseries/chart?date=month&value=sales&view=All+Graphs", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "Forecast 1")

	rec = do(t, h, http.MethodPost, "/distribution/chart?column=sales&family=Normal", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/distribution/chart?column=none&family=Normal", strings.NewReader(body), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t, datasize.MB), http.MethodGet, "/describe", nil, nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
