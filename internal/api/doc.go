// Package api exposes the task repository over HTTP. Handlers translate
// requests into domain tasks, call the repository, and map its errors to
// status codes without leaking backend detail to clients.
package api
