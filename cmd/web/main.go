package main

import (
	_ "embed"
	"fmt"
	"html"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/shootmoop/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	defaultSSH  = "your-server.com"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", defaultSSH)
	sshPort := config.GetEnv("SSH_PORT", "2222")

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr, "ssh", sshHost)
	if err := http.ListenAndServe(addr, newHandler(sshHost, sshPort)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newHandler serves the landing page with the SSH command filled in.
func newHandler(sshHost, sshPort string) http.Handler {
	command := "ssh " + sshHost
	if sshPort != "22" {
		command = fmt.Sprintf("ssh -p %s %s", sshPort, sshHost)
	}
	page := strings.ReplaceAll(htmlPage, "{{.SSHCommand}}", html.EscapeString(command))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}
