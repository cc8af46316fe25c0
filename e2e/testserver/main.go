// Package main implements a minimal stand-in for the Wordnik HTTP API used
// by the E2E tests. Every request is echoed back as JSON so tests can assert
// exactly which path, query params and credentials were sent. The listening
// address is printed on the first line of stdout.
package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
)

// Password accepted by the authenticate endpoint.
const Password = "secret"

type echo struct {
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	Query     map[string]string `json:"query"`
	APIKey    string            `json:"api_key"`
	AuthToken string            `json:"auth_token"`
}

func main() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("http://%s/v4\n", ln.Addr())

	if err := http.Serve(ln, http.HandlerFunc(handle)); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
	}
}

func handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if strings.Contains(r.URL.Path, "/authenticate/") {
		if r.URL.Query().Get("password") != Password {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid password"})
			return
		}
		user := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-" + user})
		return
	}

	out := echo{
		Method:    r.Method,
		Path:      strings.TrimPrefix(r.URL.Path, "/v4"),
		Query:     map[string]string{},
		APIKey:    r.Header.Get("api_key"),
		AuthToken: r.Header.Get("auth_token"),
	}
	for k := range r.URL.Query() {
		out.Query[k] = r.URL.Query().Get(k)
	}
	json.NewEncoder(w).Encode(out)
}
