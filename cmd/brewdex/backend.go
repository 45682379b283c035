package main

import (
	"context"
	"errors"

	"github.com/grainbill/brewdex/internal/config"
	"github.com/grainbill/brewdex/internal/mapping"
)

// importOutcome is the result of an import run, whichever backend
// performed it. Direct imports get a job id too, so log lines and CLI
// output correlate the same way server imports do.
type importOutcome struct {
	JobID string `json:"job_id"`
	mapping.ImportResult
}

// entityRow is one row of a collection listing.
type entityRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// backend is where data commands read and write records: the active
// remote's HTTP API, or a direct database connection when no remote is
// configured.
type backend interface {
	Import(ctx context.Context, doc []byte) (importOutcome, error)
	Export(ctx context.Context) ([]byte, error)
	List(ctx context.Context, collection string) ([]entityRow, error)
	Show(ctx context.Context, collection string, id int64) (map[string]any, error)
	Delete(ctx context.Context, collection string, id int64) error
	Close() error
}

// newBackend picks the data path for this invocation: an explicit
// --server flag wins, then the active remote, then the database named by
// BREWDEX_DATABASE_URL.
func newBackend() (backend, error) {
	url, token, ok, err := activeServer()
	if err != nil {
		return nil, err
	}
	if ok {
		return newHTTPBackend(url, token), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newDBBackend(cfg.DatabaseURL)
}

// activeServer reports the server the CLI should talk to, if any. The
// --token flag overrides the remote's stored token.
func activeServer() (url, token string, ok bool, err error) {
	if serverURL != "" {
		return serverURL, authToken, true, nil
	}
	path, err := config.DefaultRemotesPath()
	if err != nil {
		return "", "", false, err
	}
	rc, err := config.LoadRemotes(path)
	if err != nil {
		return "", "", false, err
	}
	r, found := rc.ActiveRemote()
	if !found {
		return "", "", false, nil
	}
	token = r.Token
	if authToken != "" {
		token = authToken
	}
	return r.URL, token, true, nil
}

// requireServer is activeServer for commands that only make sense against
// a running server.
func requireServer() (url, token string, err error) {
	url, token, ok, err := activeServer()
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", errors.New("no server configured (use --server or 'brewdex remote add')")
	}
	return url, token, nil
}
