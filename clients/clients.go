package clients

import (
	"net/http"
	"time"
)

// HTTP bundles the shared client used for all collaborator calls.
type HTTP struct{ c *http.Client }

func NewHTTP() *HTTP { return &HTTP{c: &http.Client{Timeout: 15 * time.Second}} }
