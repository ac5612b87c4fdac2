package cdhctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/cdhplugin/internal/cmapi"
)

const remoteTimeout = 30 * time.Second

type remoteVerdict struct {
	Valid bool   `json:"valid"`
	RunID string `json:"run_id"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Remote submits the cluster in path to a running validator API. apiURL and
// apiKey override the values in the file; CDH_API_KEY is the last fallback
// for the key.
func Remote(ctx context.Context, apiURL, apiKey, path string, out io.Writer, logger zerolog.Logger) error {
	f, err := LoadCluster(path)
	if err != nil {
		return err
	}
	if apiURL == "" {
		apiURL = f.APIURL
	}
	if apiURL == "" {
		return fmt.Errorf("no API URL: pass -api or set api_url in %s", path)
	}
	if apiKey == "" {
		apiKey = f.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("CDH_API_KEY")
	}

	body, err := json.Marshal(map[string]any{"cluster": f.Cluster})
	if err != nil {
		return fmt.Errorf("marshal cluster: %w", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	if apiKey != "" {
		headers["X-API-Key"] = apiKey
	}

	client := cmapi.NewClient(apiURL, "", "", remoteTimeout, logger)
	resp, err := client.Resource("/api/v1/validations").Invoke(ctx, http.MethodPost, "cluster", nil, body, headers)

	var apiErr *cmapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
		var v remoteVerdict
		if jerr := json.Unmarshal(resp.Body, &v); jerr != nil {
			return fmt.Errorf("parse validator response: %w", jerr)
		}
		fmt.Fprintf(out, "FAIL  %s (%s): [%s] %s (run %s)\n", path, f.Cluster.Name, v.Code, v.Error, v.RunID)
		return fmt.Errorf("cluster %s rejected by %s", f.Cluster.Name, apiURL)
	}
	if err != nil {
		return fmt.Errorf("submit %s: %w", path, err)
	}

	var v remoteVerdict
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return fmt.Errorf("parse validator response: %w", err)
	}
	fmt.Fprintf(out, "ok    %s (%s): run %s\n", path, f.Cluster.Name, v.RunID)
	return nil
}
