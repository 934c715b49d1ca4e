package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dezgeg/shenzen-solitaire/game"
	"github.com/dezgeg/shenzen-solitaire/store"
)

var ErrMissingBody = errors.New("missing body")

// requestError marks a request the client got wrong
type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err}
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return badRequest(ErrMissingBody)
	}
	if err != nil {
		return badRequest(fmt.Errorf("could not parse body: %w", err))
	}
	return nil
}

// statusFor maps an error to the status code the client sees
func statusFor(err error) int {
	var reqErr requestError
	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrUnknownGameID):
		return http.StatusNotFound
	case errors.Is(err, store.ErrStoreFull):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (g *GameServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	entry := g.log.WithError(err).WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	})
	if status == http.StatusInternalServerError {
		entry.Error("request failed")
		writeText(w, status, "something went wrong")
		return
	}
	entry.Debug("request refused")

	writeText(w, status, err.Error())
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.log.WithError(err).Error("could not marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}
