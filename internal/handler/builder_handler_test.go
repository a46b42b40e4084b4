package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderPreview_EchoesSelections(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"switches": {"Cherry MX Brown"},
		"layout":   {"65%"},
		"case":     {"black"},
	}

	rec := app.postForm("/builder_preview", form, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"switches":"Cherry MX Brown","layout":"65%","case":"black"}`, rec.Body.String())
}

func TestBuilderPreview_AllowsEmptySelections(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/builder_preview", url.Values{}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"switches":"","layout":"","case":""}`, rec.Body.String())
}

func TestBuilderForm(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/builder", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "switches")
}
