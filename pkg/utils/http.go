package utils

import (
	"fmt"
	"io"
	"net/http"
)

// MakeRequest executa a requisição e devolve o corpo e o status, seja qual for o status
func MakeRequest(client *http.Client, req *http.Request) ([]byte, int, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("Error reading response of %s: %w", req.URL.Path, err)
	}

	return data, resp.StatusCode, nil
}
