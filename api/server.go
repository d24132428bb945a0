package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/sartorproj/tabstat"
	"github.com/sartorproj/tabstat/analyzer"
	"github.com/sartorproj/tabstat/config"
	"github.com/sartorproj/tabstat/dataset"
	"github.com/sartorproj/tabstat/distribution"
	"github.com/sartorproj/tabstat/logger"
	"github.com/sartorproj/tabstat/report"
)

// Server exposes the analyzer over HTTP. Requests carry the CSV table in
// the body and the selection in query parameters; the server keeps no
// per-client state.
type Server struct {
	analyzer  *analyzer.Analyzer
	log       logger.Logger
	maxUpload datasize.ByteSize
	csv       *dataset.CSVOptions
	startTime time.Time
}

// NewServer creates a server. Request bodies larger than maxUpload,
// before or after decompression, are rejected.
func NewServer(a *analyzer.Analyzer, log logger.Logger, maxUpload datasize.ByteSize, csv *dataset.CSVOptions) *Server {
	if csv == nil {
		csv = dataset.DefaultCSVOptions()
	}
	return &Server{
		analyzer:  a,
		log:       log,
		maxUpload: maxUpload,
		csv:       csv,
		startTime: time.Now(),
	}
}

// Routes returns the endpoints of the server.
func (s *Server) Routes() Routes {
	return Routes{
		{"Health", http.MethodGet, "/healthz", s.handle(s.health)},
		{"Families", http.MethodGet, "/families", s.handle(s.families)},
		{"Views", http.MethodGet, "/views", s.handle(s.views)},
		{"Describe", http.MethodPost, "/describe", s.handle(s.describe)},
		{"Distribution", http.MethodPost, "/distribution", s.handle(s.distribution)},
		{"DistributionChart", http.MethodPost, "/distribution/chart", s.distributionChart},
		{"TimeSeries", http.MethodPost, "/timeseries", s.handle(s.timeSeries)},
		{"TimeSeriesChart", http.MethodPost, "/timeseries/chart", s.timeSeriesChart},
	}
}

// Handler returns the routed handler of the server.
func (s *Server) Handler() http.Handler {
	return NewRouter(s.log, s.Routes())
}

// Serve listens on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Noticef("listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cannot shut down server; %v", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Notice("server stopped")
	return nil
}

// handle adapts a JSON endpoint to an http.HandlerFunc.
func (s *Server) handle(fn func(r *http.Request) ImplResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := fn(r)
		if err := EncodeJSONResponse(res.Body, res.Code, w); err != nil {
			s.log.Errorf("cannot encode response; %v", err)
		}
	}
}

func (s *Server) health(_ *http.Request) ImplResponse {
	return Response(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": int64(time.Since(s.startTime).Seconds()),
	})
}

func (s *Server) families(r *http.Request) ImplResponse {
	tag := r.URL.Query().Get("kind")
	if tag == "" {
		return Response(http.StatusOK, map[distribution.Kind][]distribution.Family{
			distribution.Continuous: distribution.FamiliesOf(distribution.Continuous),
			distribution.Discrete:   distribution.FamiliesOf(distribution.Discrete),
		})
	}
	kind, err := distribution.ParseKind(tag)
	if err != nil {
		return errorResponse(err)
	}
	return Response(http.StatusOK, map[distribution.Kind][]distribution.Family{
		kind: distribution.FamiliesOf(kind),
	})
}

func (s *Server) views(_ *http.Request) ImplResponse {
	return Response(http.StatusOK, analyzer.Views())
}

func (s *Server) describe(r *http.Request) ImplResponse {
	table, err := s.readTable(r)
	if err != nil {
		return errorResponse(err)
	}

	columns := r.URL.Query()["column"]
	if len(columns) == 0 {
		all, err := s.analyzer.DescribeAll(r.Context(), table)
		if err != nil {
			return errorResponse(err)
		}
		return Response(http.StatusOK, all)
	}

	out := make([]*analyzer.ColumnSummary, 0, len(columns))
	for _, column := range columns {
		summary, err := s.analyzer.Describe(table, column)
		switch {
		case errors.Is(err, tabstat.ErrInvalidSelection):
			return errorResponse(err)
		case err != nil:
			summary = &analyzer.ColumnSummary{Column: column, Err: err, Error: err.Error()}
		}
		out = append(out, summary)
	}
	return Response(http.StatusOK, out)
}

func (s *Server) distributionReport(r *http.Request) (*analyzer.DistributionReport, error) {
	table, err := s.readTable(r)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return s.analyzer.Distribution(table, q.Get("column"), q.Get("kind"), q.Get("family"))
}

func (s *Server) distribution(r *http.Request) ImplResponse {
	rep, err := s.distributionReport(r)
	if err != nil {
		return errorResponse(err)
	}
	return Response(http.StatusOK, rep)
}

func (s *Server) distributionChart(w http.ResponseWriter, r *http.Request) {
	rep, err := s.distributionReport(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeChart(w, report.DistributionChart(rep))
}

func (s *Server) timeSeriesReport(r *http.Request) (*analyzer.TimeSeriesReport, error) {
	table, err := s.readTable(r)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return s.analyzer.TimeSeries(table, analyzer.TimeSeriesRequest{
		DateColumn:  q.Get("date"),
		ValueColumn: q.Get("value"),
		View:        analyzer.View(q.Get("view")),
	})
}

func (s *Server) timeSeries(r *http.Request) ImplResponse {
	rep, err := s.timeSeriesReport(r)
	if err != nil {
		return errorResponse(err)
	}
	return Response(http.StatusOK, rep)
}

func (s *Server) timeSeriesChart(w http.ResponseWriter, r *http.Request) {
	rep, err := s.timeSeriesReport(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeChart(w, report.TimeSeriesChart(rep))
}

func (s *Server) writeChart(w http.ResponseWriter, chart components.Charter) {
	var buf bytes.Buffer
	if err := report.RenderChart(&buf, chart); err != nil {
		s.log.Errorf("cannot render chart; %v", err)
		http.Error(w, "cannot render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Warningf("cannot write chart; %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	res := errorResponse(err)
	if err := EncodeJSONResponse(res.Body, res.Code, w); err != nil {
		s.log.Errorf("cannot encode response; %v", err)
	}
}

// readTable decodes the CSV request body. The Content-Encoding header
// selects the decompressor and the delimiter query parameter overrides
// the server's delimiter.
func (s *Server) readTable(r *http.Request) (*dataset.Table, error) {
	limit := int64(s.maxUpload.Bytes())
	body := http.MaxBytesReader(nil, r.Body, limit)
	defer body.Close()

	rc, err := dataset.NewDecompressor(body, r.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	opts := *s.csv
	if d := r.URL.Query().Get("delimiter"); d != "" {
		delim, err := config.ParseDelimiter(d)
		if err != nil {
			return nil, err
		}
		opts.Delimiter = delim
	}

	table, err := dataset.LoadCSVFromReader(http.MaxBytesReader(nil, rc, limit), &opts)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("read table with %d columns and %d rows", len(table.Headers), table.Len())
	return table, nil
}
