package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHTTP(t *testing.T) {
	r := httptest.NewRequest("POST", "http://example.test/api/items?page=2&debug", strings.NewReader("{}"))
	r.Header.Set("X-Request-Id", "abc-123")

	req := FromHTTP(r, []byte(`{"name":"thing"}`))

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/api/items", req.Path)
	assert.Equal(t, Some("2"), req.Query["page"])

	flag, present := req.Query["debug"]
	assert.True(t, present, "bare flag key must stay present")
	assert.False(t, flag.IsSet(), "bare flag key must carry no value")

	// net/http stores the header under its canonical name.
	assert.Equal(t, "abc-123", req.Headers["X-Request-Id"])
	assert.Equal(t, Some(`{"name":"thing"}`), req.Body)
	assert.False(t, req.Fragment.IsSet(), "fragments never survive the wire")
}

func TestFromHTTPEmptyBody(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.test/", nil)

	req := FromHTTP(r, nil)

	assert.False(t, req.Body.IsSet())
	assert.Equal(t, "/", req.Path)
}
