// Package api serves the analyzer over HTTP.
//
// Every analysis endpoint takes the CSV table as the request body and
// the selection as query parameters, and answers with JSON:
//
//	GET  /healthz
//	GET  /families?kind=Discrete
//	GET  /views
//	POST /describe?column=sales&column=cost      (no column: every column)
//	POST /distribution?column=sales&kind=Continuous&family=Gamma
//	POST /timeseries?date=month&value=sales&view=All+Graphs
//
// /distribution/chart and /timeseries/chart take the same parameters and
// return an HTML line chart instead.
//
// Bodies may be compressed (Content-Encoding gzip, zstd or bzip2) and
// may use another delimiter (?delimiter=;). Unknown columns, families,
// kinds or views answer 400; data that cannot be analyzed (empty series,
// zero denominators, too few values) answers 422.
//
//	srv := api.NewServer(a, log, 32*datasize.MB, nil)
//	err := srv.Serve(ctx, ":8080")
package api
